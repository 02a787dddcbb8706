package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings"
)

const (
	msgMissingAgentID = "missing agent ID"
	msgNotFound       = "booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{referenceNo}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	referenceNo := mux.Vars(r)["referenceNo"]

	agentID, ok := middleware.GetAgentID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{ref} - Missing agent ID")
		handlers.RespondUnauthorized(w, msgMissingAgentID)
		return
	}

	booking, err := h.service.Get(r.Context(), agentID, referenceNo)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{ref} - Booking not found: reference=%s, agent=%s", referenceNo, agentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{ref} - Failed to get booking: reference=%s, error=%v", referenceNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{ref} - Booking retrieved successfully: reference=%s, agent=%s", referenceNo, agentID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
