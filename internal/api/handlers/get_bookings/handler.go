package get_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-TourGateway/internal/api/handlers"
	"github.com/m04kA/SMC-TourGateway/internal/api/middleware"
)

const msgMissingAgentID = "missing agent ID"

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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agentID, ok := middleware.GetAgentID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing agent ID")
		handlers.RespondUnauthorized(w, msgMissingAgentID)
		return
	}

	result, err := h.service.List(r.Context(), agentID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: agent=%s, error=%v", agentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: agent=%s, total=%d", agentID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
