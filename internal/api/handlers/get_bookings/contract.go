package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, agentID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
