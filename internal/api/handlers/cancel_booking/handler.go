package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings"
)

const (
	msgMissingAgentID     = "missing agent ID"
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgLineNotFound       = "booking line not found"
	msgLineCancelled      = "booking line is already cancelled"
	msgCancelFailed       = "Cancellation failed"
	msgVendorUnavailable  = "Unable to reach the booking system, please try again"
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

// Handle PATCH /api/v1/bookings/{referenceNo}/lines/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	referenceNo := vars["referenceNo"]

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	agentID, ok := middleware.GetAgentID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Missing agent ID")
		handlers.RespondUnauthorized(w, msgMissingAgentID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), req.ToServiceRequest(agentID, referenceNo, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Validation error: %v", err)
			handlers.RespondBadRequest(w, handlers.ErrorDetail(err, bookings.ErrInvalidInput, msgInvalidRequestBody))

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Booking not found: reference=%s", referenceNo)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrLineNotFound):
			h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Line not found: reference=%s, booking_id=%d",
				referenceNo, bookingID)
			handlers.RespondNotFound(w, msgLineNotFound)

		case errors.Is(err, bookings.ErrLineCancelled):
			h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Already cancelled: reference=%s, booking_id=%d",
				referenceNo, bookingID)
			handlers.RespondConflict(w, msgLineCancelled)

		case errors.Is(err, bookings.ErrCancelRejected):
			h.logger.Warn("PATCH /bookings/{ref}/lines/{id}/cancel - Rejected by vendor: reference=%s, booking_id=%d, error=%v",
				referenceNo, bookingID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity,
				handlers.ErrorDetail(err, bookings.ErrCancelRejected, msgCancelFailed))

		case errors.Is(err, bookings.ErrVendorUnavailable):
			h.logger.Error("PATCH /bookings/{ref}/lines/{id}/cancel - Vendor unavailable: reference=%s, error=%v",
				referenceNo, err)
			handlers.RespondBadGateway(w, msgVendorUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{ref}/lines/{id}/cancel - Failed to cancel: reference=%s, booking_id=%d, error=%v",
				referenceNo, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{ref}/lines/{id}/cancel - Line cancelled successfully: reference=%s, booking_id=%d, agent=%s",
		referenceNo, bookingID, agentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
