package quote_options

import "github.com/m04kA/SMC-TourGateway/internal/domain"

// Request модель запроса на расчет цен опций тура
type Request struct {
	Tour       domain.Tour // TourID, ContractID, IsSlot, IsSeat
	TravelDate string      // "2006-01-02"
	Pax        domain.Pax
	OptionID   *int64 // Явно выбранная опция (опционально)
	TransferID *int64 // Явно выбранный трансфер (опционально)
}

// Response модель ответа с ценами
type Response struct {
	TourID             int64
	TravelDate         string
	Pax                domain.Pax
	Options            []Option
	SelectedOptionID   int64
	SelectedTransferID int64
	Selected           *domain.Quote // Расчет для выбранной пары опция/трансфер
	Sample             bool          // true, если показаны тестовые опции
	Warning            string
}

// Option опция тура с рассчитанными трансферами
type Option struct {
	OptionID    int64
	Name        string
	Description string
	Selectable  bool
	Sample      bool
	Transfers   []Transfer
}

// Transfer трансфер с расчетом стоимости
type Transfer struct {
	TransferID     int64
	Name           string
	Quote          domain.Quote
	Selectable     bool
	LowStock       bool
	SeatsAvailable *int
	RequiresSeat   bool
}
