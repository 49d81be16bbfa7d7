package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBookingAction(t *testing.T) {
	m := New("barber", prometheus.NewRegistry())

	m.ObserveBookingAction("accept", "ok")
	m.ObserveBookingAction("accept", "ok")
	m.ObserveBookingAction("delete", "remote_unavailable")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingActions.WithLabelValues("accept", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingActions.WithLabelValues("delete", "remote_unavailable")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveBookingAction("accept", "ok") })
}
