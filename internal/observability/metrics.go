package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	httpRequestsTotal   *prometheus.CounterVec
	httpLatencySeconds  *prometheus.HistogramVec
	httpErrorsTotal     *prometheus.CounterVec
	transitionsTotal    *prometheus.CounterVec
	capRejectionsTotal  *prometheus.CounterVec
	bulkApproveBatchLen prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors for the workflow API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apms_http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "apms_http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apms_http_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		transitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apms_workflow_transitions_total",
			Help: "Total number of request lifecycle transitions attempted.",
		}, []string{"action", "outcome"})

		capRejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apms_points_cap_rejections_total",
			Help: "Total number of operations blocked by the category points cap.",
		}, []string{"stage"})

		bulkApproveBatchLen = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "apms_bulk_approve_batch_size",
			Help:    "Distribution of bulk approve batch sizes.",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			httpErrorsTotal,
			transitionsTotal,
			capRejectionsTotal,
			bulkApproveBatchLen,
		)
	})
}

// HTTPRequests exposes the counter for API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for API requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for API error responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// Transitions exposes the lifecycle transition counter.
func Transitions() *prometheus.CounterVec {
	RegisterMetrics()
	return transitionsTotal
}

// CapRejections exposes the counter for cap-blocked operations.
func CapRejections() *prometheus.CounterVec {
	RegisterMetrics()
	return capRejectionsTotal
}

// BulkApproveBatch exposes the bulk approve batch size histogram.
func BulkApproveBatch() prometheus.Histogram {
	RegisterMetrics()
	return bulkApproveBatchLen
}
