package quote_options

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

// VendorClient интерфейс клиента поставщика
type VendorClient interface {
	GetTourOptions(ctx context.Context, in raynaservice.TourOptionsRequest) ([]domain.TourOption, error)
}

// Metrics счетчик ответов с тестовыми опциями
type Metrics interface {
	IncFallbackQuote()
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
