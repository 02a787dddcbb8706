package create_booking

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

// BookingRepository интерфейс хранилища истории бронирований
type BookingRepository interface {
	Append(ctx context.Context, agentID string, record domain.BookingRecord) error
}

// VendorClient интерфейс клиента поставщика
type VendorClient interface {
	GetTourOptions(ctx context.Context, in raynaservice.TourOptionsRequest) ([]domain.TourOption, error)
	GetTimeSlots(ctx context.Context, in raynaservice.TimeSlotsRequest) ([]domain.TimeSlot, error)
	CheckAvailability(ctx context.Context, in raynaservice.AvailabilityRequest) (*raynaservice.StatusResult, error)
	CreateBooking(ctx context.Context, in raynaservice.BookingRequest) (*raynaservice.BookingResponse, error)
}

// Metrics счетчик созданных бронирований
type Metrics interface {
	IncBookingCreated(kind string)
}

// NumberGenerator генерирует корреляционные номера в диапазоне [min, max]
type NumberGenerator interface {
	Between(min, max int64) int64
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// RandomNumberGenerator случайные номера без гарантии уникальности
type RandomNumberGenerator struct{}

// Between возвращает случайное число в диапазоне [min, max]
func (g *RandomNumberGenerator) Between(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}
