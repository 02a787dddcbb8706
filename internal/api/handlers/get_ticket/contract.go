package get_ticket

import (
	"context"

	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
)

type BookingService interface {
	GetTicket(ctx context.Context, req models.LineRequest) (*models.TicketResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
