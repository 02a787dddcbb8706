package get_ticket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

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

func (m *mockService) GetTicket(ctx context.Context, req models.LineRequest) (*models.TicketResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TicketResponse), args.Error(1)
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/bookings/{referenceNo}/lines/{bookingId}/ticket",
		NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPost)

	r := httptest.NewRequest(http.MethodPost, path, nil)
	r.Header.Set(middleware.AgentIDHeader, "agency-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("GetTicket", mock.Anything, models.LineRequest{
		AgentID:     "agency-1",
		ReferenceNo: "REF-1",
		BookingID:   9001,
	}).Return(&models.TicketResponse{
		ReferenceNo: "REF-1",
		BookingID:   9001,
		URL:         "https://tickets.example.com/9001.pdf",
		Direct:      true,
	}, nil)

	w := serve(svc, "/api/v1/bookings/REF-1/lines/9001/ticket")

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://tickets.example.com/9001.pdf", resp.URL)
	assert.True(t, resp.Direct)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound, msgNotFound},
		{"line not found", bookings.ErrLineNotFound, http.StatusNotFound, msgLineNotFound},
		{"cancelled line", bookings.ErrLineCancelled, http.StatusConflict, msgLineCancelled},
		{"download not offered", fmt.Errorf("%w: booking_id=9001", bookings.ErrTicketNotOffered), http.StatusConflict, msgTicketNotOffered},
		{"vendor message", fmt.Errorf("%w: Ticket not generated", bookings.ErrTicketUnavailable), http.StatusBadGateway, "Ticket not generated"},
		{"vendor down", bookings.ErrVendorUnavailable, http.StatusBadGateway, msgVendorUnavailable},
		{"unexpected", bookings.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetTicket", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(svc, "/api/v1/bookings/REF-1/lines/9001/ticket")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMsg, body["error"])
			}
		})
	}
}
