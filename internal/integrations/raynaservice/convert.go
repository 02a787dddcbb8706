package raynaservice

import (
	"fmt"

	"github.com/m04kA/SMC-TourGateway/internal/domain"
)

// toDomainOptions группирует строки опция×трансфер в опции, сохраняя порядок поставщика
func toDomainOptions(tourID int64, rows []TourOptionPrice) []domain.TourOption {
	index := make(map[int64]int, len(rows))
	options := make([]domain.TourOption, 0, len(rows))

	for _, row := range rows {
		pos, ok := index[row.TourOptionID]
		if !ok {
			name := row.TourOptionName
			if name == "" {
				name = fmt.Sprintf("Option %d", row.TourOptionID)
			}
			options = append(options, domain.TourOption{
				TourID:   tourID,
				OptionID: row.TourOptionID,
				Name:     name,
			})
			pos = len(options) - 1
			index[row.TourOptionID] = pos
		}
		options[pos].Transfers = append(options[pos].Transfers, toDomainTransfer(row))
	}

	return options
}

func toDomainTransfer(row TourOptionPrice) domain.Transfer {
	tr := domain.Transfer{
		TransferID:            row.TransferID,
		Name:                  row.TransferName,
		AdultPrice:            row.AdultPrice,
		ChildPrice:            row.ChildPrice,
		InfantPrice:           row.InfantPrice,
		FinalAmount:           row.FinalAmount,
		WithoutDiscountAmount: row.WithoutDiscountAmount,
		StartTime:             row.StartTime,
		DepartureTime:         row.DepartureTime,
		DisableChild:          row.DisableChild,
		DisableInfant:         row.DisableInfant,
		AllowTodaysBooking:    row.AllowTodaysBooking,
		CutOff:                row.CutOff,
		IsSlot:                row.IsSlot,
		IsSeat:                row.IsSeat,
		SeatsAvailable:        row.SeatAvailable,
	}
	if row.IsAvailable != nil && !*row.IsAvailable {
		tr.Unavailable = true
	}
	return tr
}

func toDomainSlots(slots []TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.TimeSlot{
			SlotID:       s.TimeSlotID,
			OptionID:     s.TourOptionID,
			Time:         s.TimeSlot,
			Available:    s.Available,
			AdultPrice:   s.AdultPrice,
			ChildPrice:   s.ChildPrice,
			DynamicPrice: s.IsDynamicPrice,
		})
	}
	return out
}

// ToBookingResult переводит результат поставщика в доменную запись
func ToBookingResult(r *BookingResult) domain.BookingResult {
	if r == nil {
		return domain.BookingResult{}
	}
	lines := make([]domain.BookingLine, 0, len(r.Details))
	for _, d := range r.Details {
		lines = append(lines, domain.BookingLine{
			BookingID:        d.BookingID,
			ConfirmationNo:   d.ConfirmationNo,
			Status:           d.Status,
			ServiceUniqueID:  d.ServiceUniqueID,
			ServiceType:      d.ServiceType,
			DownloadRequired: d.DownloadRequired,
			TicketURL:        d.TicketURL,
		})
	}
	return domain.BookingResult{
		ReferenceNo: r.ReferenceNo,
		TicketURL:   r.TicketURL,
		Details:     lines,
	}
}
