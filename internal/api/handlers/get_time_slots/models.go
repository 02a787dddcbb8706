package get_time_slots

import (
	"github.com/m04kA/SMC-TourGateway/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-TourGateway/internal/usecase/get_time_slots"
)

// TimeSlotsRequest HTTP request model
type TimeSlotsRequest struct {
	TourID         int64  `json:"tourId"`
	ContractID     int64  `json:"contractId"`
	OptionID       int64  `json:"optionId"`
	TransferID     int64  `json:"transferId"`
	TravelDate     string `json:"travelDate"` // "2025-10-15"
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	SelectedSlotID string `json:"selectedSlotId,omitempty"`
}

// SlotDTO временной слот
type SlotDTO struct {
	SlotID       string  `json:"timeSlotId"`
	Time         string  `json:"timeSlot"`
	Available    int     `json:"available"`
	AdultPrice   float64 `json:"adultPrice"`
	ChildPrice   float64 `json:"childPrice"`
	DynamicPrice bool    `json:"isDynamicPrice"`
	Selectable   bool    `json:"selectable"`
	LowStock     bool    `json:"lowStock"`
	Selected     bool    `json:"selected"`
}

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	TourID     int64     `json:"tourId"`
	OptionID   int64     `json:"optionId"`
	TransferID int64     `json:"transferId"`
	TravelDate string    `json:"travelDate"`
	Slots      []SlotDTO `json:"slots"`
	State      string    `json:"state"`
	CanBook    bool      `json:"canBook"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TimeSlotsRequest) ToUseCaseRequest() *getTimeSlots.Request {
	return &getTimeSlots.Request{
		TourID:         r.TourID,
		ContractID:     r.ContractID,
		OptionID:       r.OptionID,
		TransferID:     r.TransferID,
		TravelDate:     r.TravelDate,
		Pax:            domain.Pax{Adults: r.Adults, Children: r.Children},
		SelectedSlotID: r.SelectedSlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]SlotDTO, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotDTO{
			SlotID:       s.SlotID,
			Time:         s.Time,
			Available:    s.Available,
			AdultPrice:   s.AdultPrice,
			ChildPrice:   s.ChildPrice,
			DynamicPrice: s.DynamicPrice,
			Selectable:   s.Selectable,
			LowStock:     s.LowStock,
			Selected:     s.Selected,
		})
	}

	return &TimeSlotsResponse{
		TourID:     resp.TourID,
		OptionID:   resp.OptionID,
		TransferID: resp.TransferID,
		TravelDate: resp.TravelDate,
		Slots:      slots,
		State:      string(resp.State),
		CanBook:    resp.CanBook,
	}
}
