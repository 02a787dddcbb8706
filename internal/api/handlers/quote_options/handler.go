package quote_options

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
	quoteOptions "github.com/m04kA/SMC-TourGateway/internal/usecase/quote_options"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid travel date, expected a future date in YYYY-MM-DD format"
	msgOptionNotFound     = "tour option not found"
	msgTransferNotFound   = "transfer not found for the selected option"
)

type Handler struct {
	useCase QuoteOptionsUseCase
	logger  Logger
}

func NewHandler(useCase QuoteOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quoteOptions.ErrInvalidDate):
			h.logger.Warn("POST /quotes - Invalid travel date: tour_id=%d, date=%s", req.TourID, req.TravelDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, quoteOptions.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Validation error: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, quoteOptions.ErrOptionNotFound):
			h.logger.Warn("POST /quotes - Option not found: tour_id=%d", req.TourID)
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, quoteOptions.ErrTransferNotFound):
			h.logger.Warn("POST /quotes - Transfer not found: tour_id=%d", req.TourID)
			handlers.RespondNotFound(w, msgTransferNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to quote options: tour_id=%d, error=%v", req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Options quoted: tour_id=%d, options=%d, sample=%t",
		req.TourID, len(result.Options), result.Sample)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
