package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
)

// LeadMetrics records lead submissions and live countdown streams.
type LeadMetrics struct {
	submissions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	streams     prometheus.Gauge
}

// NewLeadMetrics registers the lead metrics on the provided registerer. A nil
// registerer yields a recorder that drops everything.
func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	if reg == nil {
		return &LeadMetrics{}
	}
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lead_submissions_total",
		Help: "Lead submissions by form and outcome.",
	}, []string{"form", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lead_submission_duration_seconds",
		Help:    "Time spent delivering a lead to the intake endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"form"})
	streams := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "countdown_streams_active",
		Help: "Open countdown event streams.",
	})
	reg.MustRegister(submissions, duration, streams)
	return &LeadMetrics{
		submissions: submissions,
		duration:    duration,
		streams:     streams,
	}
}

func (m *LeadMetrics) IncSubmission(form, outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(form), normalizeLabel(outcome)).Inc()
}

func (m *LeadMetrics) ObserveDuration(form string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(form)).Observe(d.Seconds())
}

// StreamOpened increments the live stream gauge and returns its release.
func (m *LeadMetrics) StreamOpened() func() {
	if m == nil || m.streams == nil {
		return func() {}
	}
	m.streams.Inc()
	return m.streams.Dec
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
