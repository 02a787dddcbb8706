package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/pkg/txmanager"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db, txmanager.NewTransactionManager(db)), mock
}

func sampleRecord(bookedAt time.Time) domain.BookingRecord {
	return domain.BookingRecord{
		AgentID:   "agent-1",
		TourName:  "Desert Safari",
		TourDate:  "2026-03-01",
		StartTime: "15:00",
		UniqueNo:  123456,
		BookedAt:  bookedAt,
		Result: domain.BookingResult{
			ReferenceNo: "R-1",
			Details: []domain.BookingLine{
				{BookingID: 555, ConfirmationNo: "C1", Status: "Confirmed", ServiceUniqueID: "654321", ServiceType: "Tour"},
			},
		},
	}
}

func TestRepository_Append(t *testing.T) {
	repo, mock := newMockRepository(t)
	bookedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO booking_records").
		WithArgs("agent-1", "R-1", "", "Desert Safari", "2026-03-01", "15:00", int64(123456), bookedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec("INSERT INTO booking_record_lines").
		WithArgs(int64(7), int64(555), "C1", "Confirmed", "654321", "Tour", false, "", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Append(context.Background(), "agent-1", sampleRecord(bookedAt))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Append_RollsBackOnLineFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO booking_records").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec("INSERT INTO booking_record_lines").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Append(context.Background(), "agent-1", sampleRecord(time.Now()))
	assert.ErrorIs(t, err, ErrTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_MostRecentFirst(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM booking_records WHERE agent_id = \$1 ORDER BY id DESC`).
		WithArgs("agent-1").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(int64(9), "agent-1", "R-2", nil, "Burj Khalifa", "2026-03-02", "10:00", int64(222222), now).
			AddRow(int64(7), "agent-1", "R-1", "https://t/1", "Desert Safari", "2026-03-01", "15:00", int64(111111), now))
	mock.ExpectQuery(`SELECT .+ FROM booking_record_lines WHERE record_id IN \(\$1,\$2\)`).
		WithArgs(int64(9), int64(7)).
		WillReturnRows(sqlmock.NewRows(lineColumns).
			AddRow(int64(7), int64(555), "C1", "Confirmed", "111", "Tour", false, nil).
			AddRow(int64(9), int64(777), "C2", "Cancelled", "222", "Tour", true, "https://t/2"))

	records, err := repo.List(context.Background(), "agent-1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "R-2", records[0].ReferenceNo())
	require.Len(t, records[0].Result.Details, 1)
	assert.Equal(t, int64(777), records[0].Result.Details[0].BookingID)
	assert.Equal(t, "https://t/2", records[0].Result.Details[0].TicketURL)

	assert.Equal(t, "R-1", records[1].ReferenceNo())
	assert.Equal(t, "https://t/1", records[1].Result.TicketURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT .+ FROM booking_records").
		WithArgs("agent-2").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := repo.List(context.Background(), "agent-2")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByReference_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM booking_records WHERE agent_id = \$1 AND reference_no = \$2 ORDER BY id DESC LIMIT 1`).
		WithArgs("agent-1", "missing").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := repo.GetByReference(context.Background(), "agent-1", "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_CancelLine(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "line cancelled", affected: 1},
		{name: "already cancelled or missing", affected: 0, wantErr: ErrLineNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			mock.ExpectExec(`UPDATE booking_record_lines SET status = \$1 WHERE booking_id = \$2 AND status <> \$3 AND record_id = \(SELECT id FROM booking_records WHERE agent_id = \$4 AND reference_no = \$5 ORDER BY id DESC LIMIT 1\)`).
				WithArgs("Cancelled", int64(555), "Cancelled", "agent-1", "R-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.CancelLine(context.Background(), "agent-1", "R-1", 555)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
