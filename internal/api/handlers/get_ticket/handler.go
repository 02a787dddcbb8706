package get_ticket

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

const (
	msgMissingAgentID    = "missing agent ID"
	msgInvalidBookingID  = "invalid booking ID"
	msgNotFound          = "booking not found"
	msgLineNotFound      = "booking line not found"
	msgLineCancelled     = "booking line is cancelled"
	msgTicketUnavailable = "Ticket is not available yet"
	msgTicketNotOffered  = "ticket download is not offered for this line"
	msgVendorUnavailable = "Unable to reach the booking system, please try again"
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

// Handle POST /api/v1/bookings/{referenceNo}/lines/{bookingId}/ticket
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	referenceNo := vars["referenceNo"]

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{ref}/lines/{id}/ticket - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	agentID, ok := middleware.GetAgentID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{ref}/lines/{id}/ticket - Missing agent ID")
		handlers.RespondUnauthorized(w, msgMissingAgentID)
		return
	}

	ticket, err := h.service.GetTicket(r.Context(), models.LineRequest{
		AgentID:     agentID,
		ReferenceNo: referenceNo,
		BookingID:   bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{ref}/lines/{id}/ticket - Booking not found: reference=%s", referenceNo)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrLineNotFound):
			h.logger.Warn("POST /bookings/{ref}/lines/{id}/ticket - Line not found: reference=%s, booking_id=%d",
				referenceNo, bookingID)
			handlers.RespondNotFound(w, msgLineNotFound)

		case errors.Is(err, bookings.ErrLineCancelled):
			h.logger.Warn("POST /bookings/{ref}/lines/{id}/ticket - Line cancelled: reference=%s, booking_id=%d",
				referenceNo, bookingID)
			handlers.RespondConflict(w, msgLineCancelled)

		case errors.Is(err, bookings.ErrTicketNotOffered):
			h.logger.Warn("POST /bookings/{ref}/lines/{id}/ticket - Ticket not offered: reference=%s, booking_id=%d",
				referenceNo, bookingID)
			handlers.RespondConflict(w, msgTicketNotOffered)

		case errors.Is(err, bookings.ErrTicketUnavailable):
			h.logger.Warn("POST /bookings/{ref}/lines/{id}/ticket - Ticket unavailable: reference=%s, booking_id=%d, error=%v",
				referenceNo, bookingID, err)
			handlers.RespondBadGateway(w, handlers.ErrorDetail(err, bookings.ErrTicketUnavailable, msgTicketUnavailable))

		case errors.Is(err, bookings.ErrVendorUnavailable):
			h.logger.Error("POST /bookings/{ref}/lines/{id}/ticket - Vendor unavailable: reference=%s, error=%v",
				referenceNo, err)
			handlers.RespondBadGateway(w, msgVendorUnavailable)

		default:
			h.logger.Error("POST /bookings/{ref}/lines/{id}/ticket - Failed to get ticket: reference=%s, booking_id=%d, error=%v",
				referenceNo, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{ref}/lines/{id}/ticket - Ticket retrieved: reference=%s, booking_id=%d, direct=%t",
		referenceNo, bookingID, ticket.Direct)
	handlers.RespondJSON(w, http.StatusOK, ticket)
}
