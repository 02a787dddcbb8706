package raynaservice

// TourOptionsRequest запрос живых цен опций тура (/Tour/touroption)
type TourOptionsRequest struct {
	TourID     int64  `json:"tourId"`
	ContractID int64  `json:"contractId"`
	TravelDate string `json:"travelDate"`
	NoOfAdult  int    `json:"noOfAdult"`
	NoOfChild  int    `json:"noOfChild"`
	NoOfInfant int    `json:"noOfInfant"`
}

// TourOptionPrice одна строка опция×трансфер с ценами
type TourOptionPrice struct {
	TourID                int64   `json:"tourId"`
	TourOptionID          int64   `json:"tourOptionId"`
	TourOptionName        string  `json:"tourOptionName,omitempty"`
	TransferID            int64   `json:"transferId"`
	TransferName          string  `json:"transferName"`
	AdultPrice            float64 `json:"adultPrice"`
	ChildPrice            float64 `json:"childPrice"`
	InfantPrice           float64 `json:"infantPrice"`
	WithoutDiscountAmount float64 `json:"withoutDiscountAmount"`
	FinalAmount           float64 `json:"finalAmount"`
	StartTime             string  `json:"startTime"`
	DepartureTime         string  `json:"departureTime"`
	DisableChild          bool    `json:"disableChild"`
	DisableInfant         bool    `json:"disableInfant"`
	AllowTodaysBooking    bool    `json:"allowTodaysBooking"`
	CutOff                int     `json:"cutOff"`
	IsSlot                bool    `json:"isSlot"`
	IsSeat                bool    `json:"isSeat"`
	IsDefaultTransfer     int     `json:"isDefaultTransfer"`
	RateKey               *string `json:"rateKey"`

	// Присутствуют не во всех ответах
	IsAvailable   *bool `json:"isAvailable,omitempty"`
	SeatAvailable *int  `json:"seatAvailable,omitempty"`
}

// TimeSlotsRequest запрос временных слотов (/Tour/timeslot)
type TimeSlotsRequest struct {
	TourID       int64  `json:"tourId"`
	TourOptionID int64  `json:"tourOptionId"`
	TravelDate   string `json:"travelDate"`
	TransferID   int64  `json:"transferId"`
	Adult        int    `json:"adult"`
	Child        int    `json:"child"`
	ContractID   int64  `json:"contractId"`
}

// TimeSlot временной слот поставщика
type TimeSlot struct {
	TourOptionID   int64   `json:"tourOptionId"`
	TimeSlotID     string  `json:"timeSlotId"`
	TimeSlot       string  `json:"timeSlot"`
	Available      int     `json:"available"`
	AdultPrice     float64 `json:"adultPrice"`
	ChildPrice     float64 `json:"childPrice"`
	IsDynamicPrice bool    `json:"isDynamicPrice"`
}

// AvailabilityRequest проверка наличия мест (/Tour/availability)
type AvailabilityRequest struct {
	TourID       int64  `json:"tourId"`
	TourOptionID int64  `json:"tourOptionId"`
	TransferID   int64  `json:"transferId"`
	TravelDate   string `json:"travelDate"`
	Adult        int    `json:"adult"`
	Child        int    `json:"child"`
	Infant       int    `json:"infant"`
	ContractID   int64  `json:"contractId"`
}

// StatusResult результат вида {status, message} (availability, cancelbooking)
type StatusResult struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// BookingRequest тело /Booking/bookings
type BookingRequest struct {
	UniqueNo    int64               `json:"uniqueNo"`
	TourDetails []BookingTourDetail `json:"TourDetails"`
	Passengers  []BookingPassenger  `json:"passengers"`
}

// BookingTourDetail строка услуги в запросе бронирования
type BookingTourDetail struct {
	ServiceUniqueID int64   `json:"serviceUniqueId"`
	TourID          int64   `json:"tourId"`
	OptionID        int64   `json:"optionId"`
	Adult           int     `json:"adult"`
	Child           int     `json:"child"`
	Infant          int     `json:"infant"`
	TourDate        string  `json:"tourDate"`
	TimeSlotID      string  `json:"timeSlotId"`
	StartTime       string  `json:"startTime"`
	TransferID      int64   `json:"transferId"`
	Pickup          string  `json:"pickup"`
	AdultRate       float64 `json:"adultRate"`
	ChildRate       float64 `json:"childRate"`
	ServiceTotal    string  `json:"serviceTotal"` // decimal с 6 знаками
}

// BookingPassenger пассажир в запросе бронирования
type BookingPassenger struct {
	ServiceType       string `json:"serviceType"`
	Prefix            string `json:"prefix"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Mobile            string `json:"mobile"`
	Nationality       string `json:"nationality"`
	Message           string `json:"message"`
	LeadPassenger     int    `json:"leadPassenger"`
	PaxType           string `json:"paxType"`
	ClientReferenceNo string `json:"clientReferenceNo"`
}

// BookingDetail статус одной строки в ответе на бронирование
type BookingDetail struct {
	Status           string `json:"status"`
	BookingID        int64  `json:"bookingId"`
	DownloadRequired bool   `json:"downloadRequired"`
	ServiceUniqueID  string `json:"serviceUniqueId"`
	ServiceType      string `json:"servicetype"`
	ConfirmationNo   string `json:"confirmationNo"`
	TicketURL        string `json:"ticketURL,omitempty"`
}

// BookingResult результат бронирования
type BookingResult struct {
	ReferenceNo string          `json:"referenceNo"`
	TicketURL   string          `json:"ticketURL,omitempty"`
	Details     []BookingDetail `json:"details"`
}

// BookingResponse нормализованный ответ на бронирование
type BookingResponse struct {
	StatusCode int
	Error      string
	Result     *BookingResult
}

// BookedOption пара serviceUniqueId/bookingId для запроса билетов
type BookedOption struct {
	ServiceUniqueID string `json:"serviceUniqueId"`
	BookingID       int64  `json:"bookingId"`
}

// TicketsRequest тело /Booking/GetBookedTickets
type TicketsRequest struct {
	UniqNO       int64          `json:"uniqNO"`
	ReferenceNo  string         `json:"referenceNo"`
	BookedOption []BookedOption `json:"bookedOption"`
}

// TicketsResponse нормализованный ответ на запрос билетов
type TicketsResponse struct {
	StatusCode int
	URL        string
	Error      string
}

// CancelRequest тело /Booking/cancelbooking
type CancelRequest struct {
	BookingID          string `json:"bookingId"`
	ReferenceNo        string `json:"referenceNo"`
	CancellationReason string `json:"cancellationReason"`
}

// RawResponse ответ поставщика без разбора (для прокси)
type RawResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
