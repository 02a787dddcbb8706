package vendor_proxy

import (
	"net/http"

	"github.com/m04kA/SMC-TourGateway/internal/integrations/raynaservice"
)

// Route локальный маршрут прокси и соответствующий ему путь поставщика
type Route struct {
	Method     string
	Path       string
	VendorPath string
}

// Routes таблица маршрутов прокси к API поставщика
var Routes = []Route{
	{Method: http.MethodGet, Path: "/api/countries", VendorPath: raynaservice.PathCountries},
	{Method: http.MethodPost, Path: "/api/cities", VendorPath: raynaservice.PathCities},
	{Method: http.MethodPost, Path: "/api/tours", VendorPath: raynaservice.PathTourStaticData},
	{Method: http.MethodPost, Path: "/api/tour-details", VendorPath: raynaservice.PathTourStaticDataByID},
	{Method: http.MethodPost, Path: "/api/tour-options-static", VendorPath: raynaservice.PathTourOptionsStatic},
	{Method: http.MethodPost, Path: "/api/tour-options", VendorPath: raynaservice.PathTourOptions},
	{Method: http.MethodPost, Path: "/api/tour-timeslots", VendorPath: raynaservice.PathTimeSlots},
	{Method: http.MethodPost, Path: "/api/tour-availability", VendorPath: raynaservice.PathAvailability},
	{Method: http.MethodPost, Path: "/api/bookings", VendorPath: raynaservice.PathBookings},
	{Method: http.MethodPost, Path: "/api/get-tickets", VendorPath: raynaservice.PathBookedTickets},
	{Method: http.MethodPost, Path: "/api/cancel-booking", VendorPath: raynaservice.PathCancelBooking},
}
