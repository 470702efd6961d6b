package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.AppointmentCreated("BATH")
	m.AppointmentCreated("BATH")
	m.BookingRejected("slot_unavailable")
	m.NotificationSent("webhook", time.Millisecond, nil)
	m.NotificationSent("webhook", time.Millisecond, errors.New("boom"))
	m.HTTPRequestStarted()
	m.HTTPRequestFinished("GET", "/api/v1/catalog", 200, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.appointmentsCreated.WithLabelValues("test", "BATH")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsRejected.WithLabelValues("test", "slot_unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsSent.WithLabelValues("test", "webhook", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notificationsSent.WithLabelValues("test", "webhook", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("test", "GET", "/api/v1/catalog", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequestsInFlight.WithLabelValues("test")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.AppointmentCreated("BATH")
		m.BookingRejected("x")
		m.NotificationSent("sheet", time.Second, nil)
		m.ObserveDBQuery("exec", time.Second, nil)
		m.SetDBPoolStats(1, 1, 0, 0)
		m.SetActiveSessions(3)
		m.HTTPRequestStarted()
		m.HTTPRequestFinished("GET", "/", 200, time.Second)
	})
}
