package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.BookingCreated()
	m.BookingConflict("constraint")
	m.BookingConflict("constraint")
	m.Transition("pending", "confirmed")
	m.PlanEnforced("applied", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("constraint")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("pending", "confirmed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ProfessionalsDeactivated))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.BookingConflict("precheck")
		m.Transition("a", "b")
		m.PlanEnforced("failed", 0)
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)
	})
}
