package get_time_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

// UseCase use case получения временных слотов для slot-туров
type UseCase struct {
	vendor       VendorClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(vendor VendorClient, logger Logger) *UseCase {
	return &UseCase{
		vendor:       vendor,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute получает слоты у поставщика и определяет, можно ли бронировать
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: tour=%d, option=%d, transfer=%d, date=%s",
		req.TourID, req.OptionID, req.TransferID, req.TravelDate)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Слоты поставщика
	slots, err := uc.vendor.GetTimeSlots(ctx, raynaservice.TimeSlotsRequest{
		TourID:       req.TourID,
		TourOptionID: req.OptionID,
		TravelDate:   date.Format(domain.VendorDateFormat),
		TransferID:   req.TransferID,
		Adult:        req.Pax.Adults,
		Child:        req.Pax.Children,
		ContractID:   req.ContractID,
	})
	if err != nil {
		uc.logger.Error("GetTimeSlots: vendor error for tour=%d, option=%d: %v", req.TourID, req.OptionID, err)
		return nil, fmt.Errorf("%w: %v", ErrVendorUnavailable, err)
	}

	// 3. Готовность шага выбора слота
	state := domain.SlotReadiness(true, slots, req.SelectedSlotID)

	resp := &Response{
		TourID:     req.TourID,
		OptionID:   req.OptionID,
		TransferID: req.TransferID,
		TravelDate: req.TravelDate,
		Slots:      make([]Slot, 0, len(slots)),
		State:      state,
		CanBook:    state.CanBook(),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, Slot{
			SlotID:       s.SlotID,
			Time:         s.Time,
			Available:    s.Available,
			AdultPrice:   s.AdultPrice,
			ChildPrice:   s.ChildPrice,
			DynamicPrice: s.DynamicPrice,
			Selectable:   s.IsSelectable(),
			LowStock:     s.IsLowStock(),
			Selected:     req.SelectedSlotID != "" && s.SlotID == req.SelectedSlotID,
		})
	}

	uc.logger.Info("GetTimeSlots: tour=%d, slots=%d, state=%s", req.TourID, len(resp.Slots), state)
	return resp, nil
}
