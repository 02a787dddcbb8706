package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

const (
	msgBookingFailed = "Booking failed"
	msgNotPersisted  = "Booking confirmed but could not be saved to history"
	msgSeatsSoldOut  = "No seats available"
	msgNotSelectable = "Selected option is not available"
	msgSlotSoldOut   = "Selected time slot is not available"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	vendor       VendorClient
	metrics      Metrics
	numbers      NumberGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vendor VendorClient,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vendor:       vendor,
		metrics:      metrics,
		numbers:      &RandomNumberGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Цены, слоты и места перепроверяются у поставщика последовательно перед отправкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: agent=%s, tour=%d, option=%d, transfer=%d, slot=%q, date=%s, sample=%t",
		req.AgentID, req.Tour.TourID, req.OptionID, req.TransferID, req.TimeSlotID, req.TravelDate, req.Sample)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Тестовый выбор не отправляется поставщику и не сохраняется
	if req.Sample {
		return uc.acknowledgeSample(req)
	}

	// 3. Перепроверка выбора по живым данным
	sel, err := uc.resolveLive(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Сборка и отправка бронирования (строка в статусе Pending до ответа)
	uniqueNo := uc.numbers.Between(domain.CorrelationMin, domain.CorrelationMax)
	serviceUniqueID := uc.numbers.Between(domain.CorrelationMin, domain.CorrelationMax)
	payload := buildBookingRequest(req, sel, uniqueNo, serviceUniqueID)

	uc.logger.Info("CreateBooking: submitting uniqueNo=%d, total=%s", uniqueNo, payload.TourDetails[0].ServiceTotal)
	resp, err := uc.vendor.CreateBooking(ctx, payload)
	if err != nil {
		uc.logger.Error("CreateBooking: vendor error for uniqueNo=%d: %v", uniqueNo, err)
		return nil, fmt.Errorf("%w: %v", ErrVendorUnavailable, err)
	}

	// 5. Успех только при статусе 200 и наличии номера брони
	if resp.StatusCode != domain.VendorSuccessStatus || resp.Result == nil || resp.Result.ReferenceNo == "" {
		msg := resp.Error
		if msg == "" {
			msg = msgBookingFailed
		}
		uc.logger.Warn("CreateBooking: vendor rejected uniqueNo=%d, status=%d: %s", uniqueNo, resp.StatusCode, msg)
		return nil, fmt.Errorf("%w: %s", ErrBookingRejected, msg)
	}

	// 6. Одна запись в начало истории агента
	record := domain.BookingRecord{
		AgentID:   req.AgentID,
		TourName:  req.Tour.Name,
		TourDate:  req.TravelDate,
		StartTime: sel.quote.StartTime,
		UniqueNo:  uniqueNo,
		BookedAt:  now,
		Result:    raynaservice.ToBookingResult(resp.Result),
	}

	out := &Response{
		Live:   true,
		Status: string(domain.LineStatusConfirmed),
		Quote:  sel.quote,
		Record: &record,
	}

	if err := uc.bookingRepo.Append(ctx, req.AgentID, record); err != nil {
		uc.logger.Error("CreateBooking: booking reference=%s confirmed but not persisted: %v", record.ReferenceNo(), err)
		out.Warning = msgNotPersisted
	}

	uc.metrics.IncBookingCreated(kindLive)
	uc.logger.Info("CreateBooking: confirmed reference=%s for agent=%s", record.ReferenceNo(), req.AgentID)
	return out, nil
}

// acknowledgeSample возвращает предварительный номер RT-xxxxx для тестового выбора
func (uc *UseCase) acknowledgeSample(req *Request) (*Response, error) {
	options := domain.SampleOptions(req.Tour)

	sel, err := uc.selectTransfer(options, req)
	if err != nil {
		return nil, err
	}
	sel.quote = domain.NewQuote(req.Tour, sel.transfer, req.Pax)

	ref := fmt.Sprintf("%s%d", domain.ProvisionalPrefix, uc.numbers.Between(domain.ProvisionalMin, domain.ProvisionalMax))

	uc.metrics.IncBookingCreated(kindSample)
	uc.logger.Info("CreateBooking: sample selection acknowledged as %s for agent=%s", ref, req.AgentID)

	return &Response{
		Live:                   false,
		Status:                 ProvisionalStatus,
		Quote:                  sel.quote,
		ProvisionalReferenceNo: ref,
	}, nil
}

// resolveLive перепроверяет опцию, трансфер, слот и места. Вызовы строго последовательны.
func (uc *UseCase) resolveLive(ctx context.Context, req *Request) (selection, error) {
	travelDate, _ := parseDate(req.TravelDate)
	vendorDate := travelDate.Format(domain.VendorDateFormat)

	// 3.1. Живые цены
	options, err := uc.vendor.GetTourOptions(ctx, raynaservice.TourOptionsRequest{
		TourID:     req.Tour.TourID,
		ContractID: req.Tour.ContractID,
		TravelDate: vendorDate,
		NoOfAdult:  req.Pax.Adults,
		NoOfChild:  req.Pax.Children,
		NoOfInfant: req.Pax.Infants,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: live pricing failed for tour=%d: %v", req.Tour.TourID, err)
		return selection{}, fmt.Errorf("%w: live pricing: %v", ErrVendorUnavailable, err)
	}

	sel, err := uc.selectTransfer(options, req)
	if err != nil {
		return selection{}, err
	}

	// 3.2. Слоты
	if domain.RequiresSlot(req.Tour, sel.transfer) {
		if req.TimeSlotID == "" {
			uc.logger.Warn("CreateBooking: transfer=%d requires a time slot", sel.transfer.TransferID)
			return selection{}, ErrSlotRequired
		}

		slots, err := uc.vendor.GetTimeSlots(ctx, raynaservice.TimeSlotsRequest{
			TourID:       req.Tour.TourID,
			TourOptionID: sel.option.OptionID,
			TravelDate:   vendorDate,
			TransferID:   sel.transfer.TransferID,
			Adult:        req.Pax.Adults,
			Child:        req.Pax.Children,
			ContractID:   req.Tour.ContractID,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: time slots failed for tour=%d: %v", req.Tour.TourID, err)
			return selection{}, fmt.Errorf("%w: time slots: %v", ErrVendorUnavailable, err)
		}

		if !domain.SlotReadiness(true, slots, req.TimeSlotID).CanBook() {
			uc.logger.Warn("CreateBooking: slot=%s not available for tour=%d", req.TimeSlotID, req.Tour.TourID)
			return selection{}, fmt.Errorf("%w: %s", ErrSlotNotAvailable, msgSlotSoldOut)
		}

		slot, _ := domain.FindSlot(slots, req.TimeSlotID)
		sel.slot = &slot
		sel.quote = domain.NewSlotQuote(sel.transfer, slot, req.Pax)
	} else {
		sel.quote = domain.NewQuote(req.Tour, sel.transfer, req.Pax)
	}

	// 3.3. Места
	if domain.RequiresSeatCheck(req.Tour, sel.transfer) {
		res, err := uc.vendor.CheckAvailability(ctx, raynaservice.AvailabilityRequest{
			TourID:       req.Tour.TourID,
			TourOptionID: sel.option.OptionID,
			TransferID:   sel.transfer.TransferID,
			TravelDate:   vendorDate,
			Adult:        req.Pax.Adults,
			Child:        req.Pax.Children,
			Infant:       req.Pax.Infants,
			ContractID:   req.Tour.ContractID,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed for tour=%d: %v", req.Tour.TourID, err)
			return selection{}, fmt.Errorf("%w: availability: %v", ErrVendorUnavailable, err)
		}
		if res.Status != domain.AvailabilitySuccessStatus {
			msg := res.Message
			if msg == "" {
				msg = msgSeatsSoldOut
			}
			uc.logger.Warn("CreateBooking: no seats for tour=%d, option=%d: %s", req.Tour.TourID, sel.option.OptionID, msg)
			return selection{}, fmt.Errorf("%w: %s", ErrNotAvailable, msg)
		}
	}

	return sel, nil
}

// selectTransfer находит выбранные опцию и трансфер и проверяет их доступность
func (uc *UseCase) selectTransfer(options []domain.TourOption, req *Request) (selection, error) {
	option, ok := domain.FindOption(options, req.OptionID)
	if !ok {
		uc.logger.Warn("CreateBooking: option=%d not offered for tour=%d", req.OptionID, req.Tour.TourID)
		return selection{}, fmt.Errorf("%w: option_id=%d", ErrOptionNotFound, req.OptionID)
	}

	transferID := req.TransferID
	transfer, err := domain.ResolveTransfer(option, &transferID)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return selection{}, fmt.Errorf("%w: %v", ErrTransferNotFound, err)
	}

	if !transfer.IsSelectable() {
		uc.logger.Warn("CreateBooking: option=%d transfer=%d is not selectable", option.OptionID, transfer.TransferID)
		return selection{}, fmt.Errorf("%w: %s", ErrNotAvailable, msgNotSelectable)
	}

	return selection{option: option, transfer: transfer}, nil
}
