package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks workflow outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	CasesSubmitted        *prometheus.CounterVec
	AppointmentsScheduled *prometheus.CounterVec
	BestEffortFailures    *prometheus.CounterVec
}

// New registers the portal metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CasesSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fir_cases_submitted_total",
			Help: "Case submissions by outcome (submitted, rejected, failed)",
		}, []string{"outcome"}),
		AppointmentsScheduled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fir_appointments_scheduled_total",
			Help: "Appointment requests by outcome (scheduled, rejected, failed)",
		}, []string{"outcome"}),
		BestEffortFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "fir_best_effort_failures_total",
			Help: "Failed notification and audit writes that were logged and dropped",
		}, []string{"step"}),
	}
}

func (m *Metrics) CaseOutcome(outcome string) {
	if m == nil {
		return
	}
	m.CasesSubmitted.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AppointmentOutcome(outcome string) {
	if m == nil {
		return
	}
	m.AppointmentsScheduled.WithLabelValues(outcome).Inc()
}

func (m *Metrics) BestEffortFailure(step string) {
	if m == nil {
		return
	}
	m.BestEffortFailures.WithLabelValues(step).Inc()
}
