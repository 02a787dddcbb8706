package create_booking

import (
	"strconv"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

// selection разрешенный против живых данных выбор
type selection struct {
	option   domain.TourOption
	transfer domain.Transfer
	slot     *domain.TimeSlot
	quote    domain.Quote
}

// buildBookingRequest собирает тело /Booking/bookings: одна строка услуги и один ведущий пассажир
func buildBookingRequest(req *Request, sel selection, uniqueNo, serviceUniqueID int64) raynaservice.BookingRequest {
	slotID := ""
	if sel.slot != nil {
		slotID = sel.slot.SlotID
	}

	return raynaservice.BookingRequest{
		UniqueNo: uniqueNo,
		TourDetails: []raynaservice.BookingTourDetail{{
			ServiceUniqueID: serviceUniqueID,
			TourID:          req.Tour.TourID,
			OptionID:        sel.option.OptionID,
			Adult:           req.Pax.Adults,
			Child:           req.Pax.Children,
			Infant:          req.Pax.Infants,
			TourDate:        req.TravelDate,
			TimeSlotID:      slotID,
			StartTime:       sel.quote.StartTime,
			TransferID:      sel.transfer.TransferID,
			Pickup:          req.Pickup,
			AdultRate:       sel.quote.Prices.Adult,
			ChildRate:       sel.quote.Prices.Child,
			ServiceTotal:    domain.FormatServiceTotal(sel.quote.Total),
		}},
		Passengers: []raynaservice.BookingPassenger{{
			ServiceType:       domain.ServiceTypeTour,
			Prefix:            req.Traveler.Prefix,
			FirstName:         req.Traveler.FirstName,
			LastName:          req.Traveler.LastName,
			Email:             req.Traveler.Email,
			Mobile:            req.Traveler.Mobile,
			Nationality:       req.Traveler.Nationality,
			Message:           req.Traveler.Message,
			LeadPassenger:     domain.LeadPassengerFlag,
			PaxType:           domain.PaxTypeAdult,
			ClientReferenceNo: strconv.FormatInt(uniqueNo, 10),
		}},
	}
}
