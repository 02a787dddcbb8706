package get_booking

import (
	"context"

	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

type BookingService interface {
	Get(ctx context.Context, agentID, referenceNo string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
