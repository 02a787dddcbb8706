package get_time_slots

import "github.com/m04kA/SMC-TourGateway/internal/domain"

// Request модель запроса временных слотов
type Request struct {
	TourID         int64
	ContractID     int64
	OptionID       int64
	TransferID     int64
	TravelDate     string // "2006-01-02"
	Pax            domain.Pax
	SelectedSlotID string // Выбранный слот (опционально)
}

// Response модель ответа со слотами и готовностью шага выбора слота
type Response struct {
	TourID     int64
	OptionID   int64
	TransferID int64
	TravelDate string
	Slots      []Slot
	State      domain.SlotState
	CanBook    bool
}

// Slot временной слот с признаками доступности
type Slot struct {
	SlotID       string
	Time         string
	Available    int
	AdultPrice   float64
	ChildPrice   float64
	DynamicPrice bool
	Selectable   bool
	LowStock     bool
	Selected     bool
}
