package get_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, agentID string) (*models.BookingListResponse, error) {
	args := m.Called(ctx, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

func newRequest(agentID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	return r.WithContext(middleware.WithAgentID(r.Context(), agentID))
}

func TestHandle_MostRecentFirst(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, "agency-1").Return(&models.BookingListResponse{
		Bookings: []models.BookingResponse{
			{Result: models.BookingResultResponse{ReferenceNo: "REF-2"}},
			{Result: models.BookingResultResponse{ReferenceNo: "REF-1"}},
		},
		Total: 2,
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, newRequest("agency-1"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "REF-2", resp.Bookings[0].Result.ReferenceNo)
}

func TestHandle_RepositoryError(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, "agency-1").Return(nil, errors.New("redis down"))

	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, newRequest("agency-1"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
