package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.IncSubmission("demo", OutcomeDelivered)
	m.IncSubmission("demo", OutcomeDelivered)
	m.IncSubmission("", OutcomeFailed)
	m.ObserveDuration("demo", 120*time.Millisecond)
	release := m.StreamOpened()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := counterValue(mfs, "lead_submissions_total", map[string]string{"form": "demo", "outcome": OutcomeDelivered})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = counterValue(mfs, "lead_submissions_total", map[string]string{"form": "unknown", "outcome": OutcomeFailed})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	mf := findMetricFamily(mfs, "countdown_streams_active")
	require.NotNil(t, mf)
	assert.Equal(t, 1.0, mf.GetMetric()[0].GetGauge().GetValue())

	release()
	mfs, err = reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, 0.0, findMetricFamily(mfs, "countdown_streams_active").GetMetric()[0].GetGauge().GetValue())

	hist := findMetricFamily(mfs, "lead_submission_duration_seconds")
	require.NotNil(t, hist)
	assert.Equal(t, uint64(1), hist.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestNilLeadMetricsIsSafe(t *testing.T) {
	var m *LeadMetrics
	m.IncSubmission("demo", OutcomeDelivered)
	m.ObserveDuration("demo", time.Second)
	m.StreamOpened()()

	NewLeadMetrics(nil).IncSubmission("demo", OutcomeFailed)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func counterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %s not found", name)
	}
	for _, metric := range mf.GetMetric() {
		matched := 0
		for _, lp := range metric.GetLabel() {
			if labels[lp.GetName()] == lp.GetValue() {
				matched++
			}
		}
		if matched == len(labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %s with labels %v not found", name, labels)
}
