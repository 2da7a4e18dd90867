package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestInitRegistryIdempotent(t *testing.T) {
	first := InitRegistry()
	second := InitRegistry()

	assert.Same(t, first, second)
}

func TestRecordAnalysis(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordAnalysis(0.25, 10000)
	})
}

func TestRecordAnalysisFailure(t *testing.T) {
	InitRegistry()

	for _, reason := range []string{"invalid_input", "resource_limit", "simulation"} {
		assert.NotPanics(t, func() {
			RecordAnalysisFailure(reason)
		})
	}
}

func TestRecordUpload(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordUpload(42)
	})
}

func TestHandlerServesMetrics(t *testing.T) {
	InitRegistry()
	RecordAnalysis(0.1, 500)

	families, err := GetRegistry().Gather()
	assert.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, fam := range families {
		names[fam.GetName()] = true
	}
	assert.True(t, names["tradecast_analyses_total"])
	assert.True(t, names["tradecast_simulations_total"])
	assert.NotNil(t, Handler())
}
