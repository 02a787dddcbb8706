package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	VendorRequestsTotal   *prometheus.CounterVec
	VendorRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal   *prometheus.CounterVec
	BookingsCancelledTotal prometheus.Counter
	FallbackQuotesTotal    prometheus.Counter
}

// New регистрирует коллекторы в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует коллекторы в переданном реестре (удобно для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		VendorRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "vendor_requests_total",
			Help:        "Total number of requests sent to the tours vendor",
			ConstLabels: labels,
		}, []string{"path", "outcome"}),

		VendorRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "vendor_request_duration_seconds",
			Help:        "Tours vendor request duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"path"}),

		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings accepted, split by live vendor bookings and sample acknowledgements",
			ConstLabels: labels,
		}, []string{"kind"}),

		BookingsCancelledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Booking lines cancelled at the vendor",
			ConstLabels: labels,
		}),

		FallbackQuotesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "fallback_quotes_total",
			Help:        "Quotes answered with sample options because live pricing failed",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.VendorRequestsTotal,
		m.VendorRequestDuration,
		m.BookingsCreatedTotal,
		m.BookingsCancelledTotal,
		m.FallbackQuotesTotal,
	)

	return m
}

// ObserveHTTP фиксирует один обработанный HTTP-запрос
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveVendor фиксирует один вызов поставщика
func (m *Metrics) ObserveVendor(path, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.VendorRequestsTotal.WithLabelValues(path, outcome).Inc()
	m.VendorRequestDuration.WithLabelValues(path).Observe(seconds)
}

func (m *Metrics) IncBookingCreated(kind string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncBookingCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelledTotal.Inc()
}

func (m *Metrics) IncFallbackQuote() {
	if m == nil {
		return
	}
	m.FallbackQuotesTotal.Inc()
}
