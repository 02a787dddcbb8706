package quote_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

// UseCase use case расчета цен опций тура
type UseCase struct {
	vendor       VendorClient
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(vendor VendorClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		vendor:       vendor,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute получает живые цены и считает стоимость для каждой пары опция/трансфер.
// При сбое поставщика или пустом ответе возвращает тестовые опции с предупреждением.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteOptions: tour=%d, contract=%d, date=%s, pax=%d/%d/%d",
		req.Tour.TourID, req.Tour.ContractID, req.TravelDate, req.Pax.Adults, req.Pax.Children, req.Pax.Infants)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("QuoteOptions: validation failed: %v", err)
		return nil, err
	}

	// 2. Живые цены поставщика
	resp := &Response{
		TourID:     req.Tour.TourID,
		TravelDate: req.TravelDate,
		Pax:        req.Pax,
	}

	options, err := uc.vendor.GetTourOptions(ctx, raynaservice.TourOptionsRequest{
		TourID:     req.Tour.TourID,
		ContractID: req.Tour.ContractID,
		TravelDate: date.Format(domain.VendorDateFormat),
		NoOfAdult:  req.Pax.Adults,
		NoOfChild:  req.Pax.Children,
		NoOfInfant: req.Pax.Infants,
	})
	if err != nil || len(options) == 0 {
		// 3. Тестовые опции вместо живых
		uc.logger.Warn("QuoteOptions: live pricing unavailable for tour=%d, showing sample options: %v", req.Tour.TourID, err)
		options = domain.SampleOptions(req.Tour)
		resp.Sample = true
		resp.Warning = domain.SampleWarning
		uc.metrics.IncFallbackQuote()
	}

	// 4. Расчет по каждой паре опция/трансфер
	resp.Options = make([]Option, 0, len(options))
	for _, opt := range options {
		resp.Options = append(resp.Options, buildOption(req.Tour, opt, req.Pax))
	}

	// 5. Выбор: явный выбор важнее значения по умолчанию
	if err := uc.resolveSelection(req, options, resp); err != nil {
		uc.logger.Warn("QuoteOptions: selection failed for tour=%d: %v", req.Tour.TourID, err)
		return nil, err
	}

	uc.logger.Info("QuoteOptions: tour=%d, options=%d, sample=%t", req.Tour.TourID, len(resp.Options), resp.Sample)
	return resp, nil
}

// resolveSelection заполняет выбранную опцию/трансфер и итоговый расчет.
// Без явного выбора используется первая опция и первый трансфер поставщика.
func (uc *UseCase) resolveSelection(req *Request, options []domain.TourOption, resp *Response) error {
	if len(options) == 0 {
		return nil
	}

	option := options[0]
	if req.OptionID != nil {
		found, ok := domain.FindOption(options, *req.OptionID)
		if !ok {
			return fmt.Errorf("%w: option_id=%d", ErrOptionNotFound, *req.OptionID)
		}
		option = found
	}

	transfer, err := domain.ResolveTransfer(option, req.TransferID)
	if err != nil {
		if errors.Is(err, domain.ErrTransferNotFound) {
			return fmt.Errorf("%w: %v", ErrTransferNotFound, err)
		}
		// Опция без трансферов: выбора нет
		resp.SelectedOptionID = option.OptionID
		return nil
	}

	quote := domain.NewQuote(req.Tour, transfer, req.Pax)
	resp.SelectedOptionID = option.OptionID
	resp.SelectedTransferID = transfer.TransferID
	resp.Selected = &quote
	return nil
}

func buildOption(tour domain.Tour, opt domain.TourOption, pax domain.Pax) Option {
	out := Option{
		OptionID:    opt.OptionID,
		Name:        opt.Name,
		Description: opt.Description,
		Selectable:  opt.IsSelectable(),
		Sample:      opt.Sample,
		Transfers:   make([]Transfer, 0, len(opt.Transfers)),
	}

	for _, tr := range opt.Transfers {
		out.Transfers = append(out.Transfers, Transfer{
			TransferID:     tr.TransferID,
			Name:           tr.Name,
			Quote:          domain.NewQuote(tour, tr, pax),
			Selectable:     tr.IsSelectable(),
			LowStock:       tr.IsLowStock(),
			SeatsAvailable: tr.SeatsAvailable,
			RequiresSeat:   domain.RequiresSeatCheck(tour, tr),
		})
	}
	return out
}
