package bookings

import (
	"context"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

// BookingRepository интерфейс хранилища истории бронирований
type BookingRepository interface {
	List(ctx context.Context, agentID string) ([]domain.BookingRecord, error)
	GetByReference(ctx context.Context, agentID, referenceNo string) (*domain.BookingRecord, error)
	CancelLine(ctx context.Context, agentID, referenceNo string, bookingID int64) error
}

// VendorClient интерфейс клиента поставщика
type VendorClient interface {
	GetBookedTickets(ctx context.Context, in raynaservice.TicketsRequest) (*raynaservice.TicketsResponse, error)
	CancelBooking(ctx context.Context, in raynaservice.CancelRequest) (*raynaservice.StatusResult, error)
}

// VoucherRenderer формирует PDF-ваучер по записи бронирования
type VoucherRenderer interface {
	Render(record domain.BookingRecord) ([]byte, error)
}

// Metrics счетчики жизненного цикла бронирований
type Metrics interface {
	IncBookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
