package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-TourGateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingAgentID     = "missing agent ID"
	msgInvalidDate        = "invalid travel date, expected a future date in YYYY-MM-DD format"
	msgOptionNotFound     = "Selected option is no longer offered"
	msgTransferNotFound   = "Selected transfer is no longer offered"
	msgNotAvailable       = "Selected option is not available"
	msgSlotRequired       = "Please select a time slot"
	msgSlotNotAvailable   = "Selected time slot is not available"
	msgVendorUnavailable  = "Unable to reach the booking system, please try again"
	msgBookingFailed      = "Booking failed"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agentID, ok := middleware.GetAgentID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing agent ID")
		handlers.RespondUnauthorized(w, msgMissingAgentID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(agentID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid travel date: agent=%s, date=%s", agentID, req.TravelDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation error: agent=%s, error=%v", agentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrSlotRequired):
			h.logger.Warn("POST /bookings - Slot required: agent=%s, tour_id=%d", agentID, req.TourID)
			handlers.RespondConflict(w, msgSlotRequired)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: agent=%s, slot=%s", agentID, req.TimeSlotID)
			handlers.RespondConflict(w, handlers.ErrorDetail(err, createBooking.ErrSlotNotAvailable, msgSlotNotAvailable))

		case errors.Is(err, createBooking.ErrNotAvailable):
			h.logger.Warn("POST /bookings - Selection not available: agent=%s, option_id=%d, transfer_id=%d",
				agentID, req.OptionID, req.TransferID)
			handlers.RespondConflict(w, handlers.ErrorDetail(err, createBooking.ErrNotAvailable, msgNotAvailable))

		case errors.Is(err, createBooking.ErrOptionNotFound):
			h.logger.Warn("POST /bookings - Option not found: agent=%s, option_id=%d", agentID, req.OptionID)
			handlers.RespondConflict(w, msgOptionNotFound)

		case errors.Is(err, createBooking.ErrTransferNotFound):
			h.logger.Warn("POST /bookings - Transfer not found: agent=%s, transfer_id=%d", agentID, req.TransferID)
			handlers.RespondConflict(w, msgTransferNotFound)

		case errors.Is(err, createBooking.ErrBookingRejected):
			h.logger.Warn("POST /bookings - Rejected by vendor: agent=%s, error=%v", agentID, err)
			handlers.RespondBadGateway(w, handlers.ErrorDetail(err, createBooking.ErrBookingRejected, msgBookingFailed))

		case errors.Is(err, createBooking.ErrVendorUnavailable):
			h.logger.Error("POST /bookings - Vendor unavailable: agent=%s, error=%v", agentID, err)
			handlers.RespondBadGateway(w, msgVendorUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: agent=%s, error=%v", agentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if !result.Live {
		h.logger.Info("POST /bookings - Sample selection acknowledged: agent=%s, reference=%s", agentID, response.ReferenceNo)
		handlers.RespondJSON(w, http.StatusAccepted, response)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: agent=%s, reference=%s", agentID, response.ReferenceNo)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
