package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, req models.CancelLineRequest) (*models.CancelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
