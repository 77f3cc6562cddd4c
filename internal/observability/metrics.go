// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Upstream metrics
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec

	// Merge metrics
	MergeRuns     *prometheus.CounterVec
	MergeDuration prometheus.Histogram
	LapsMerged    prometheus.Counter

	// Analysis metrics
	AnalysisRequests *prometheus.CounterVec
	AnalysisLatency  prometheus.Histogram

	// HTTP surface metrics
	HTTPRequests *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "openf1_service"
	}

	return &Metrics{
		UpstreamRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of OpenF1 API requests by endpoint and status",
		}, []string{"endpoint", "status"}),
		UpstreamLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_latency_seconds",
			Help:      "OpenF1 API request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),

		MergeRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "runs_total",
			Help:      "Total number of telemetry merge runs by status",
		}, []string{"status"}),
		MergeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "duration_seconds",
			Help:      "Telemetry merge duration in seconds, fetch included",
			Buckets:   prometheus.DefBuckets,
		}),
		LapsMerged: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "merge",
			Name:      "laps_total",
			Help:      "Total number of lap records merged",
		}),

		AnalysisRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "requests_total",
			Help:      "Total number of AI analysis sink calls by status",
		}, []string{"status"}),
		AnalysisLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "request_latency_seconds",
			Help:      "AI analysis sink call latency in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of API requests served by route and code",
		}, []string{"route", "code"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordUpstreamRequest records one OpenF1 API call.
func RecordUpstreamRequest(endpoint, status string, seconds float64) {
	DefaultMetrics.UpstreamRequests.WithLabelValues(endpoint, status).Inc()
	DefaultMetrics.UpstreamLatency.WithLabelValues(endpoint).Observe(seconds)
}

// RecordMergeRun records one telemetry merge run.
func RecordMergeRun(status string, seconds float64, laps int) {
	DefaultMetrics.MergeRuns.WithLabelValues(status).Inc()
	DefaultMetrics.MergeDuration.Observe(seconds)
	if laps > 0 {
		DefaultMetrics.LapsMerged.Add(float64(laps))
	}
}

// RecordAnalysisRequest records one AI sink call.
func RecordAnalysisRequest(status string, seconds float64) {
	DefaultMetrics.AnalysisRequests.WithLabelValues(status).Inc()
	DefaultMetrics.AnalysisLatency.Observe(seconds)
}

// RecordHTTPRequest records one served API request.
func RecordHTTPRequest(route, code string) {
	DefaultMetrics.HTTPRequests.WithLabelValues(route, code).Inc()
}
