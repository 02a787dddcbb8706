package domain

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrTransferNotFound возвращается, когда выбранный трансфер отсутствует в опции
	ErrTransferNotFound = errors.New("domain: transfer not found in option")

	// ErrNoTransfers возвращается, когда поставщик не вернул ни одного трансфера
	ErrNoTransfers = errors.New("domain: option has no transfers")
)

// Prices holds per-category unit prices
type Prices struct {
	Adult  float64
	Child  float64
	Infant float64
}

// Quote is the computed amount due for one option/transfer/pax selection
type Quote struct {
	Prices         Prices
	AdultSubtotal  float64
	ChildSubtotal  float64
	InfantSubtotal float64
	Total          float64
	RequiresSlot   bool
	StartTime      string // transfer start time, empty when a slot is required
}

// Total computes adults*adult + children*child + infants*infant.
// Pure function of its inputs, never cached.
func Total(pax Pax, prices Prices) float64 {
	return float64(pax.Adults)*prices.Adult +
		float64(pax.Children)*prices.Child +
		float64(pax.Infants)*prices.Infant
}

// ResolveTransfer returns the explicitly selected transfer, or the first
// transfer returned by the vendor when nothing was selected yet.
func ResolveTransfer(option TourOption, transferID *int64) (Transfer, error) {
	if len(option.Transfers) == 0 {
		return Transfer{}, ErrNoTransfers
	}
	if transferID == nil {
		return option.Transfers[0], nil
	}
	for _, tr := range option.Transfers {
		if tr.TransferID == *transferID {
			return tr, nil
		}
	}
	return Transfer{}, fmt.Errorf("%w: transfer_id=%d, option_id=%d", ErrTransferNotFound, *transferID, option.OptionID)
}

// RequiresSlot reports whether a time slot must be chosen before booking
func RequiresSlot(tour Tour, transfer Transfer) bool {
	return tour.IsSlot || transfer.IsSlot
}

// RequiresSeatCheck reports whether seat availability must be checked before booking
func RequiresSeatCheck(tour Tour, transfer Transfer) bool {
	return tour.IsSeat || transfer.IsSeat
}

// NewQuote computes subtotals and total using the prices of the given transfer
func NewQuote(tour Tour, transfer Transfer, pax Pax) Quote {
	return newQuote(transfer.Prices(), pax, RequiresSlot(tour, transfer), transfer)
}

// NewSlotQuote computes the quote once a time slot is chosen.
// A dynamic-price slot overrides adult and child prices of the transfer.
func NewSlotQuote(transfer Transfer, slot TimeSlot, pax Pax) Quote {
	q := newQuote(ApplySlotPrices(transfer.Prices(), slot), pax, true, transfer)
	q.StartTime = slot.Time
	return q
}

func newQuote(prices Prices, pax Pax, requiresSlot bool, transfer Transfer) Quote {
	q := Quote{
		Prices:         prices,
		AdultSubtotal:  float64(pax.Adults) * prices.Adult,
		ChildSubtotal:  float64(pax.Children) * prices.Child,
		InfantSubtotal: float64(pax.Infants) * prices.Infant,
		Total:          Total(pax, prices),
		RequiresSlot:   requiresSlot,
	}
	if !requiresSlot {
		q.StartTime = transfer.DisplayStartTime()
	}
	return q
}

// ApplySlotPrices overrides adult/child prices with the slot prices when the slot is dynamically priced
func ApplySlotPrices(prices Prices, slot TimeSlot) Prices {
	if !slot.DynamicPrice {
		return prices
	}
	return Prices{
		Adult:  slot.AdultPrice,
		Child:  slot.ChildPrice,
		Infant: prices.Infant,
	}
}

// FormatServiceTotal serializes a total in the vendor wire format (6 fractional digits)
func FormatServiceTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', ServiceTotalDecimals, 64)
}

// SlotState is the readiness of the time slot step
type SlotState string

const (
	SlotNotRequired       SlotState = "not_required"
	SlotNoneAvailable     SlotState = "no_slots"
	SlotAwaitingSelection SlotState = "awaiting_selection"
	SlotReady             SlotState = "ready"
)

// SlotReadiness determines whether booking can proceed with respect to time slots
func SlotReadiness(requiresSlot bool, slots []TimeSlot, selectedSlotID string) SlotState {
	if !requiresSlot {
		return SlotNotRequired
	}

	anySelectable := false
	for _, s := range slots {
		if !s.IsSelectable() {
			continue
		}
		anySelectable = true
		if selectedSlotID != "" && s.SlotID == selectedSlotID {
			return SlotReady
		}
	}

	if !anySelectable {
		return SlotNoneAvailable
	}
	return SlotAwaitingSelection
}

// CanBook reports whether the slot step allows a booking submission
func (s SlotState) CanBook() bool {
	return s == SlotNotRequired || s == SlotReady
}

// FindSlot returns the slot with the given id
func FindSlot(slots []TimeSlot, slotID string) (TimeSlot, bool) {
	for _, s := range slots {
		if s.SlotID == slotID {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// FindOption returns the option with the given id
func FindOption(options []TourOption, optionID int64) (TourOption, bool) {
	for _, o := range options {
		if o.OptionID == optionID {
			return o, true
		}
	}
	return TourOption{}, false
}
