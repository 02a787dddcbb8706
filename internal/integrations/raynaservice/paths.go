package raynaservice

// Пути API поставщика
const (
	PathCountries          = "/Tour/countries"
	PathCities             = "/Tour/cities"
	PathTourStaticData     = "/Tour/tourstaticdata"
	PathTourStaticDataByID = "/Tour/tourStaticDataById"
	PathTourOptionsStatic  = "/Tour/touroptionstaticdata"
	PathTourOptions        = "/Tour/touroption"
	PathTimeSlots          = "/Tour/timeslot"
	PathAvailability       = "/Tour/availability"
	PathBookings           = "/Booking/bookings"
	PathBookedTickets      = "/Booking/GetBookedTickets"
	PathCancelBooking      = "/Booking/cancelbooking"
)
