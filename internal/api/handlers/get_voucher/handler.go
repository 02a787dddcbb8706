package get_voucher

import (
	"errors"
	"fmt"
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

const contentTypePDF = "application/pdf"

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

// Handle GET /api/v1/bookings/{referenceNo}/voucher
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	referenceNo := mux.Vars(r)["referenceNo"]

	agentID, ok := middleware.GetAgentID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{ref}/voucher - Missing agent ID")
		handlers.RespondUnauthorized(w, msgMissingAgentID)
		return
	}

	pdf, err := h.service.Voucher(r.Context(), agentID, referenceNo)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{ref}/voucher - Booking not found: reference=%s, agent=%s", referenceNo, agentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{ref}/voucher - Failed to render voucher: reference=%s, error=%v", referenceNo, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", "voucher-"+referenceNo+".pdf"))
	h.logger.Info("GET /bookings/{ref}/voucher - Voucher rendered: reference=%s, size=%d", referenceNo, len(pdf))
	handlers.RespondRaw(w, http.StatusOK, contentTypePDF, pdf)
}
