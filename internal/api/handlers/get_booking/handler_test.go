package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context, agentID, referenceNo string) (*models.BookingResponse, error) {
	args := m.Called(ctx, agentID, referenceNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

func serve(svc BookingService, agentID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/bookings/{referenceNo}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/REF-1", nil)
	if agentID != "" {
		r.Header.Set(middleware.AgentIDHeader, agentID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, "agency-1", "REF-1").Return(&models.BookingResponse{
		TourName: "Desert Safari",
		Result:   models.BookingResultResponse{ReferenceNo: "REF-1"},
	}, nil)

	w := serve(svc, "agency-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"referenceNo":"REF-1"`)
	svc.AssertExpectations(t)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, "agency-2", "REF-1").Return(nil, bookings.ErrBookingNotFound)

	w := serve(svc, "agency-2")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
}

func TestHandle_MissingAgent(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
