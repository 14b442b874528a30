package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"fir-portal/internal/metrics"
)

func TestCounters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.CaseOutcome("submitted")
	m.CaseOutcome("submitted")
	m.AppointmentOutcome("rejected")
	m.BestEffortFailure("audit")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CasesSubmitted.WithLabelValues("submitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsScheduled.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BestEffortFailures.WithLabelValues("audit")))
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.CaseOutcome("submitted")
		m.AppointmentOutcome("scheduled")
		m.BestEffortFailure("notify")
	})
}
