package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP
	RequestDuration *prometheus.HistogramVec

	// Booking
	BookingsCreated  prometheus.Counter
	BookingConflicts *prometheus.CounterVec

	// Lifecycle
	Transitions *prometheus.CounterVec

	// Capacity
	PlanEnforcements         *prometheus.CounterVec
	ProfessionalsDeactivated prometheus.Counter
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "agenda_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),

		BookingsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "agenda_bookings_created_total",
				Help: "Appointments successfully created",
			},
		),

		BookingConflicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agenda_booking_conflicts_total",
				Help: "Bookings rejected because the slot was taken",
			},
			[]string{"stage"},
		),

		Transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agenda_appointment_transitions_total",
				Help: "Appointment status transitions",
			},
			[]string{"from", "to"},
		),

		PlanEnforcements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agenda_plan_enforcements_total",
				Help: "Plan changes processed by the capacity enforcer",
			},
			[]string{"result"},
		),

		ProfessionalsDeactivated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "agenda_professionals_deactivated_total",
				Help: "Professionals deactivated by plan downgrades",
			},
		),
	}
}

// Os helpers abaixo aceitam receiver nil (testes sem métricas).

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// BookingConflict: stage = "precheck" (validação) ou "constraint" (índice único).
func (m *Metrics) BookingConflict(stage string) {
	if m == nil {
		return
	}
	m.BookingConflicts.WithLabelValues(stage).Inc()
}

func (m *Metrics) Transition(from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) PlanEnforced(result string, deactivated int) {
	if m == nil {
		return
	}
	m.PlanEnforcements.WithLabelValues(result).Inc()
	m.ProfessionalsDeactivated.Add(float64(deactivated))
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
