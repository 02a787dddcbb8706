package voucher

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

func TestRender(t *testing.T) {
	r := NewRenderer("Tour Gateway")

	pdf, err := r.Render(domain.BookingRecord{
		TourName:  "Dubai Desert Safari",
		TourDate:  "2026-03-01",
		StartTime: "15:00",
		UniqueNo:  123456,
		BookedAt:  time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		Result: domain.BookingResult{
			ReferenceNo: "R-1",
			Details: []domain.BookingLine{
				{BookingID: 555, ConfirmationNo: "C1", ServiceUniqueID: "654321", Status: "Confirmed"},
				{BookingID: 556, ConfirmationNo: "C2", ServiceUniqueID: "654322", Status: "Cancelled"},
			},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestRender_RequiresReference(t *testing.T) {
	_, err := NewRenderer("Tour Gateway").Render(domain.BookingRecord{TourName: "x"})
	assert.ErrorIs(t, err, ErrNoReference)
}
