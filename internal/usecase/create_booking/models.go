package create_booking

import "github.com/m04kA/SMC-TourGateway/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	AgentID    string      // ID агента (X-Agent-ID)
	Tour       domain.Tour // TourID, ContractID, Name, IsSlot, IsSeat
	OptionID   int64
	TransferID int64
	TimeSlotID string // Обязателен для slot-туров
	TravelDate string // "2006-01-02"
	Pax        domain.Pax
	Traveler   Traveler
	Pickup     string // Место посадки (опционально)
	Sample     bool   // Выбор из тестовых опций
}

// Traveler данные ведущего пассажира
type Traveler struct {
	Prefix      string
	FirstName   string
	LastName    string
	Email       string
	Mobile      string
	Nationality string
	Message     string // опционально
}

// Response модель ответа на создание бронирования
type Response struct {
	Live   bool   // false для подтверждения тестового выбора
	Status string // Confirmed или Processing
	Quote  domain.Quote

	// Live бронирование
	Record *domain.BookingRecord

	// Тестовый выбор
	ProvisionalReferenceNo string

	// Warning заполняется, если бронирование подтверждено, но не сохранено в истории
	Warning string
}

// ProvisionalStatus статус подтверждения тестового выбора
const ProvisionalStatus = "Processing"

// Метки для метрик
const (
	kindLive   = "live"
	kindSample = "sample"
)
