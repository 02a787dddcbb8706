package domain

// Pricing and availability
const (
	MinAdults         = 1
	LowStockThreshold = 5
)

// Vendor status codes. Booking creation and cancellation use different success codes.
const (
	VendorSuccessStatus       = 200
	CancelSuccessStatus       = 1
	AvailabilitySuccessStatus = 1
)

// Correlation tokens generated per booking submission
const (
	CorrelationMin = 100000
	CorrelationMax = 999999

	ProvisionalMin    = 10000
	ProvisionalMax    = 99999
	ProvisionalPrefix = "RT-"
)

// Booking defaults
const (
	DefaultCancellationReason   = "Customer request"
	MaxCancellationReasonLength = 500
	LeadPassengerFlag           = 1
	PaxTypeAdult                = "Adult"
	ServiceTypeTour             = "Tour"
	ServiceTotalDecimals        = 6
)

// Time format constants
const (
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	VendorDateFormat = "2006/01/02" // date format expected by live option pricing
)
