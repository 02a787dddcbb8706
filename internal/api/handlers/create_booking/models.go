package create_booking

import (
	quoteHandler "github.com/m04kA/SMC-TourGateway/internal/api/handlers/quote_options"
	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-TourGateway/internal/usecase/create_booking"
)

// TravelerRequest данные ведущего пассажира
type TravelerRequest struct {
	Prefix      string `json:"prefix"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Nationality string `json:"nationality"`
	Message     string `json:"message,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TourID     int64           `json:"tourId"`
	ContractID int64           `json:"contractId"`
	TourName   string          `json:"tourName"`
	IsSlot     bool            `json:"isSlot"`
	IsSeat     bool            `json:"isSeat"`
	OptionID   int64           `json:"optionId"`
	TransferID int64           `json:"transferId"`
	TimeSlotID string          `json:"timeSlotId,omitempty"`
	TravelDate string          `json:"travelDate"` // "2025-10-15"
	Adults     int             `json:"adults"`
	Children   int             `json:"children"`
	Infants    int             `json:"infants"`
	Traveler   TravelerRequest `json:"traveler"`
	Pickup     string          `json:"pickup,omitempty"`
	Sample     bool            `json:"sample"`
}

// BookingResponse HTTP response model.
// Для живого бронирования заполнен booking, для тестового выбора referenceNo.
type BookingResponse struct {
	Live        bool                    `json:"live"`
	Status      string                  `json:"status"`
	ReferenceNo string                  `json:"referenceNo"`
	Quote       quoteHandler.QuoteDTO   `json:"quote"`
	Booking     *models.BookingResponse `json:"booking,omitempty"`
	Warning     string                  `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(agentID string) *createBooking.Request {
	return &createBooking.Request{
		AgentID: agentID,
		Tour: domain.Tour{
			TourID:     r.TourID,
			ContractID: r.ContractID,
			Name:       r.TourName,
			IsSlot:     r.IsSlot,
			IsSeat:     r.IsSeat,
		},
		OptionID:   r.OptionID,
		TransferID: r.TransferID,
		TimeSlotID: r.TimeSlotID,
		TravelDate: r.TravelDate,
		Pax: domain.Pax{
			Adults:   r.Adults,
			Children: r.Children,
			Infants:  r.Infants,
		},
		Traveler: createBooking.Traveler{
			Prefix:      r.Traveler.Prefix,
			FirstName:   r.Traveler.FirstName,
			LastName:    r.Traveler.LastName,
			Email:       r.Traveler.Email,
			Mobile:      r.Traveler.Mobile,
			Nationality: r.Traveler.Nationality,
			Message:     r.Traveler.Message,
		},
		Pickup: r.Pickup,
		Sample: r.Sample,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		Live:        resp.Live,
		Status:      resp.Status,
		ReferenceNo: resp.ProvisionalReferenceNo,
		Quote:       quoteHandler.FromDomainQuote(resp.Quote),
		Warning:     resp.Warning,
	}
	if resp.Record != nil {
		booking := models.FromDomainRecord(*resp.Record)
		out.Booking = &booking
		out.ReferenceNo = resp.Record.ReferenceNo()
	}
	return out
}
