// Package observability provides Prometheus metrics for the LlamaEdge
// client. Metrics are registered in the default registry; exposing them
// over HTTP is left to the embedding application.
package observability

import "github.com/prometheus/client_golang/prometheus"

// LLMBuckets defines histogram buckets suited for LLM inference latencies,
// ranging from 100ms to 120s.
var LLMBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

var (
	// RequestsTotal counts client calls by operation and outcome.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llamaedge_client_requests_total",
			Help: "Total client requests",
		},
		[]string{"operation", "status"},
	)

	// RequestDuration records client call duration in seconds by operation.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llamaedge_client_request_duration_seconds",
			Help:    "Request duration",
			Buckets: LLMBuckets,
		},
		[]string{"operation"},
	)

	// StreamsActive tracks the number of open chat completion streams.
	StreamsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "llamaedge_client_streams_active",
			Help: "Active chat completion streams",
		},
	)

	// TokensTotal counts tokens reported in usage fields by direction
	// (input/output).
	TokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llamaedge_client_tokens_total",
			Help: "Token count",
		},
		[]string{"direction"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		StreamsActive,
		TokensTotal,
	)
}

// ObserveRequest records one completed client call.
func ObserveRequest(operation string, seconds float64, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	RequestsTotal.WithLabelValues(operation, status).Inc()
	RequestDuration.WithLabelValues(operation).Observe(seconds)
}

// ObserveUsage records token accounting from a response usage block.
func ObserveUsage(promptTokens, completionTokens int) {
	if promptTokens > 0 {
		TokensTotal.WithLabelValues("input").Add(float64(promptTokens))
	}
	if completionTokens > 0 {
		TokensTotal.WithLabelValues("output").Add(float64(completionTokens))
	}
}
