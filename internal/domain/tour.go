package domain

// Tour represents a bookable product from the vendor catalog.
// Immutable once fetched.
type Tour struct {
	TourID      int64
	ContractID  int64 // pricing/inventory partition
	CountryID   int64
	CityID      int64
	Name        string
	Duration    string
	Rating      float64
	ReviewCount int
	IsSlot      bool // booking requires a time slot choice
	IsSeat      bool // booking requires a seat availability check
}

// TourOption is a purchasable variant of a tour (e.g. ticket class)
type TourOption struct {
	TourID      int64
	OptionID    int64
	Name        string
	Description string
	MinPax      int
	MaxPax      int
	ChildAge    string
	InfantAge   string
	Transfers   []Transfer

	// Sample marks placeholder options shown when live pricing is unavailable
	Sample bool
}

// Transfer is a pricing/logistics variant within an option (with/without pickup)
type Transfer struct {
	TransferID            int64
	Name                  string
	AdultPrice            float64
	ChildPrice            float64
	InfantPrice           float64
	FinalAmount           float64
	WithoutDiscountAmount float64
	StartTime             string
	DepartureTime         string
	DisableChild          bool
	DisableInfant         bool
	AllowTodaysBooking    bool
	CutOff                int // hours before start for same-day booking
	IsSlot                bool
	IsSeat                bool

	// Unavailable is an explicit "not available" mark on the price record
	Unavailable bool
	// SeatsAvailable is nil when the vendor did not report stock
	SeatsAvailable *int
}

// Prices returns per-category unit prices of the transfer
func (t Transfer) Prices() Prices {
	return Prices{
		Adult:  t.AdultPrice,
		Child:  t.ChildPrice,
		Infant: t.InfantPrice,
	}
}

// IsSelectable returns false when the transfer is marked unavailable or sold out
func (t Transfer) IsSelectable() bool {
	if t.Unavailable {
		return false
	}
	return t.SeatsAvailable == nil || *t.SeatsAvailable > 0
}

// IsLowStock returns true when few seats remain. Informational only.
func (t Transfer) IsLowStock() bool {
	return t.SeatsAvailable != nil && *t.SeatsAvailable > 0 && *t.SeatsAvailable <= LowStockThreshold
}

// DisplayStartTime returns the start time used when no slot step occurs
func (t Transfer) DisplayStartTime() string {
	if t.StartTime != "" {
		return t.StartTime
	}
	return t.DepartureTime
}

// IsSelectable returns true when at least one transfer of the option can be selected
func (o TourOption) IsSelectable() bool {
	for _, tr := range o.Transfers {
		if tr.IsSelectable() {
			return true
		}
	}
	return false
}

// TimeSlot is a bookable start time for option+transfer+date
type TimeSlot struct {
	SlotID       string
	OptionID     int64
	Time         string
	Available    int
	AdultPrice   float64
	ChildPrice   float64
	DynamicPrice bool // slot prices override the transfer prices
}

// IsSelectable returns false when the slot has no seats left
func (s TimeSlot) IsSelectable() bool {
	return s.Available > 0
}

// IsLowStock returns true when few seats remain in the slot
func (s TimeSlot) IsLowStock() bool {
	return s.Available > 0 && s.Available <= LowStockThreshold
}
