package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
	getTimeSlots "github.com/m04kA/SMC-TourGateway/internal/usecase/get_time_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid travel date, expected a future date in YYYY-MM-DD format"
	msgVendorUnavailable  = "unable to fetch time slots, please try again"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/timeslots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TimeSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidDate):
			h.logger.Warn("POST /timeslots - Invalid travel date: tour_id=%d, date=%s", req.TourID, req.TravelDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("POST /timeslots - Validation error: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getTimeSlots.ErrVendorUnavailable):
			h.logger.Error("POST /timeslots - Vendor unavailable: tour_id=%d, option_id=%d, error=%v",
				req.TourID, req.OptionID, err)
			handlers.RespondBadGateway(w, msgVendorUnavailable)

		default:
			h.logger.Error("POST /timeslots - Failed to get slots: tour_id=%d, error=%v", req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /timeslots - Slots retrieved: tour_id=%d, option_id=%d, slots=%d, state=%s",
		req.TourID, req.OptionID, len(result.Slots), result.State)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
