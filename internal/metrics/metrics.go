// Package metrics provides the centralized Prometheus metrics registry for
// the analysis service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	AnalysesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "analyses_total",
		Help:      "Total number of completed analysis runs",
	})
	AnalysisFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "analysis_failures_total",
		Help:      "Total number of failed analysis runs by reason",
	}, []string{"reason"})
	SimulationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "simulations_total",
		Help:      "Total number of bootstrap simulation rows generated",
	})
	UploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "uploads_total",
		Help:      "Total number of CSV uploads accepted",
	})
	TradesParsedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "trades_parsed_total",
		Help:      "Total number of round-trip trades extracted from uploads",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "result_cache_hits_total",
		Help:      "Total number of analysis result cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "result_cache_misses_total",
		Help:      "Total number of analysis result cache misses",
	})
	RateLimitedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tradecast",
		Name:      "rate_limited_requests_total",
		Help:      "Total number of requests rejected by the rate limiter",
	})
)

// Gauge metrics
var (
	RequestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tradecast",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served",
	})
	LastEnsembleElements = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tradecast",
		Name:      "last_ensemble_elements",
		Help:      "Size in elements of the most recent simulation ensemble",
	})
)

// Histogram metrics
var (
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tradecast",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of full analysis runs in seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tradecast",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(AnalysesTotal)
		registry.MustRegister(AnalysisFailuresTotal)
		registry.MustRegister(SimulationsTotal)
		registry.MustRegister(UploadsTotal)
		registry.MustRegister(TradesParsedTotal)
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)
		registry.MustRegister(RateLimitedTotal)

		registry.MustRegister(RequestsInFlight)
		registry.MustRegister(LastEnsembleElements)

		registry.MustRegister(AnalysisDuration)
		registry.MustRegister(RequestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordAnalysis records a completed analysis run.
func RecordAnalysis(durationSeconds float64, simulations int) {
	AnalysesTotal.Inc()
	AnalysisDuration.Observe(durationSeconds)
	SimulationsTotal.Add(float64(simulations))
}

// RecordAnalysisFailure records a failed analysis run.
func RecordAnalysisFailure(reason string) {
	AnalysisFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordUpload records an accepted CSV upload.
func RecordUpload(trades int) {
	UploadsTotal.Inc()
	TradesParsedTotal.Add(float64(trades))
}
