package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveHTTP("POST", "/api/v1/bookings", "201", 0.2)
	m.ObserveVendor("/Tour/touroption", "ok", 0.1)
	m.ObserveVendor("/Tour/touroption", "unreachable", 1)
	m.IncBookingCreated("live")
	m.IncBookingCreated("sample")
	m.IncBookingCreated("sample")
	m.IncBookingCancelled()
	m.IncFallbackQuote()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.VendorRequestsTotal.WithLabelValues("/Tour/touroption", "unreachable")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("sample")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCancelledTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbackQuotesTotal))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", "200", 0)
		m.ObserveVendor("/Tour/countries", "ok", 0)
		m.IncBookingCreated("live")
		m.IncBookingCancelled()
		m.IncFallbackQuote()
	})
}
