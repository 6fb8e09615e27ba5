package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Arena metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arena",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Provider calls
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "provider",
			Name:      "calls_total",
			Help:      "Total provider generate calls",
		},
		[]string{"provider", "model", "status"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "provider",
			Name:      "errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arena",
			Subsystem: "provider",
			Name:      "call_duration_seconds",
			Help:      "Provider call duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider", "model"},
	)

	// Token counters
	TokensPromptTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "provider",
			Name:      "tokens_prompt_total",
			Help:      "Total prompt tokens consumed",
		},
		[]string{"provider", "model"},
	)

	TokensCompletionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "provider",
			Name:      "tokens_completion_total",
			Help:      "Total completion tokens generated",
		},
		[]string{"provider", "model"},
	)

	// Comparison batches
	ComparisonsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "compare",
			Name:      "batches_total",
			Help:      "Total comparison batches executed",
		},
	)

	// Vision fallback transitions
	VisionOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "vision",
			Name:      "outcomes_total",
			Help:      "Vision analysis outcomes by tier",
		},
		[]string{"tier"}, // vision, fallback, system
	)
)

// RecordRequest records an HTTP request with its duration.
func RecordRequest(method, endpoint, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}

// RecordProviderCall records one provider call outcome with token usage.
func RecordProviderCall(provider, model, status string, duration float64, promptTokens, completionTokens int) {
	ProviderCallsTotal.WithLabelValues(provider, model, status).Inc()
	ProviderCallDuration.WithLabelValues(provider, model).Observe(duration)
	if promptTokens > 0 {
		TokensPromptTotal.WithLabelValues(provider, model).Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		TokensCompletionTotal.WithLabelValues(provider, model).Add(float64(completionTokens))
	}
}

// RecordProviderError records a provider failure by coarse error type.
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}

// RecordVisionOutcome records which tier produced the final vision answer.
func RecordVisionOutcome(tier string) {
	VisionOutcomesTotal.WithLabelValues(tier).Inc()
}
