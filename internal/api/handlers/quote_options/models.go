package quote_options

import (
	"github.com/m04kA/SMC-TourGateway/internal/domain"
	quoteOptions "github.com/m04kA/SMC-TourGateway/internal/usecase/quote_options"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	TourID     int64  `json:"tourId"`
	ContractID int64  `json:"contractId"`
	TourName   string `json:"tourName,omitempty"`
	TravelDate string `json:"travelDate"` // "2025-10-15"
	IsSlot     bool   `json:"isSlot"`
	IsSeat     bool   `json:"isSeat"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Infants    int    `json:"infants"`
	OptionID   *int64 `json:"optionId,omitempty"`
	TransferID *int64 `json:"transferId,omitempty"`
}

// QuoteDTO расчет стоимости
type QuoteDTO struct {
	AdultPrice     float64 `json:"adultPrice"`
	ChildPrice     float64 `json:"childPrice"`
	InfantPrice    float64 `json:"infantPrice"`
	AdultSubtotal  float64 `json:"adultSubtotal"`
	ChildSubtotal  float64 `json:"childSubtotal"`
	InfantSubtotal float64 `json:"infantSubtotal"`
	Total          float64 `json:"total"`
	RequiresSlot   bool    `json:"requiresSlot"`
	StartTime      string  `json:"startTime,omitempty"`
}

// TransferDTO трансфер опции с расчетом
type TransferDTO struct {
	TransferID     int64    `json:"transferId"`
	Name           string   `json:"name"`
	Quote          QuoteDTO `json:"quote"`
	Selectable     bool     `json:"selectable"`
	LowStock       bool     `json:"lowStock"`
	SeatsAvailable *int     `json:"seatsAvailable,omitempty"`
	RequiresSeat   bool     `json:"requiresSeat"`
}

// OptionDTO опция тура
type OptionDTO struct {
	OptionID    int64         `json:"optionId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Selectable  bool          `json:"selectable"`
	Sample      bool          `json:"sample"`
	Transfers   []TransferDTO `json:"transfers"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	TourID             int64       `json:"tourId"`
	TravelDate         string      `json:"travelDate"`
	Adults             int         `json:"adults"`
	Children           int         `json:"children"`
	Infants            int         `json:"infants"`
	Options            []OptionDTO `json:"options"`
	SelectedOptionID   int64       `json:"selectedOptionId,omitempty"`
	SelectedTransferID int64       `json:"selectedTransferId,omitempty"`
	Selected           *QuoteDTO   `json:"selected,omitempty"`
	Sample             bool        `json:"sample"`
	Warning            string      `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quoteOptions.Request {
	return &quoteOptions.Request{
		Tour: domain.Tour{
			TourID:     r.TourID,
			ContractID: r.ContractID,
			Name:       r.TourName,
			IsSlot:     r.IsSlot,
			IsSeat:     r.IsSeat,
		},
		TravelDate: r.TravelDate,
		Pax: domain.Pax{
			Adults:   r.Adults,
			Children: r.Children,
			Infants:  r.Infants,
		},
		OptionID:   r.OptionID,
		TransferID: r.TransferID,
	}
}

// FromDomainQuote конвертирует расчет в DTO
func FromDomainQuote(q domain.Quote) QuoteDTO {
	return QuoteDTO{
		AdultPrice:     q.Prices.Adult,
		ChildPrice:     q.Prices.Child,
		InfantPrice:    q.Prices.Infant,
		AdultSubtotal:  q.AdultSubtotal,
		ChildSubtotal:  q.ChildSubtotal,
		InfantSubtotal: q.InfantSubtotal,
		Total:          q.Total,
		RequiresSlot:   q.RequiresSlot,
		StartTime:      q.StartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteOptions.Response) *QuoteResponse {
	options := make([]OptionDTO, 0, len(resp.Options))
	for _, o := range resp.Options {
		transfers := make([]TransferDTO, 0, len(o.Transfers))
		for _, t := range o.Transfers {
			transfers = append(transfers, TransferDTO{
				TransferID:     t.TransferID,
				Name:           t.Name,
				Quote:          FromDomainQuote(t.Quote),
				Selectable:     t.Selectable,
				LowStock:       t.LowStock,
				SeatsAvailable: t.SeatsAvailable,
				RequiresSeat:   t.RequiresSeat,
			})
		}
		options = append(options, OptionDTO{
			OptionID:    o.OptionID,
			Name:        o.Name,
			Description: o.Description,
			Selectable:  o.Selectable,
			Sample:      o.Sample,
			Transfers:   transfers,
		})
	}

	out := &QuoteResponse{
		TourID:             resp.TourID,
		TravelDate:         resp.TravelDate,
		Adults:             resp.Pax.Adults,
		Children:           resp.Pax.Children,
		Infants:            resp.Pax.Infants,
		Options:            options,
		SelectedOptionID:   resp.SelectedOptionID,
		SelectedTransferID: resp.SelectedTransferID,
		Sample:             resp.Sample,
		Warning:            resp.Warning,
	}
	if resp.Selected != nil {
		selected := FromDomainQuote(*resp.Selected)
		out.Selected = &selected
	}
	return out
}
