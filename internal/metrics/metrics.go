// Package metrics provides Prometheus metrics for the whisper service
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the whisper service
type Metrics struct {
	// gRPC request metrics
	GrpcRequestsTotal    *prometheus.CounterVec
	GrpcRequestDuration  *prometheus.HistogramVec
	GrpcRequestsInFlight prometheus.Gauge

	// Digest metrics
	DigestsTotal      *prometheus.CounterVec
	DigestDuration    prometheus.Histogram
	NodesTotal        prometheus.Counter
	TreeDepthObserved prometheus.Histogram
	TreeSizeObserved  prometheus.Histogram

	// Extractor metrics
	ExtractorRunsTotal *prometheus.CounterVec
	ExtractorDuration  *prometheus.HistogramVec

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	// gRPC request metrics
	m.GrpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whisper_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "status"},
	)

	m.GrpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whisper_grpc_request_duration_seconds",
			Help:    "Duration of gRPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	m.GrpcRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "whisper_grpc_requests_in_flight",
			Help: "Number of gRPC requests currently being processed",
		},
	)

	// Digest metrics
	m.DigestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whisper_digests_total",
			Help: "Total number of tree digests",
		},
		[]string{"status"},
	)

	m.DigestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "whisper_digest_duration_seconds",
			Help:    "Duration of full tree digests in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	m.NodesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "whisper_nodes_total",
			Help: "Total number of nodes produced across all digests",
		},
	)

	m.TreeSizeObserved = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "whisper_tree_size_nodes",
			Help:    "Node count per digested tree",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	m.TreeDepthObserved = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "whisper_tree_depth",
			Help:    "Depth per digested tree",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
		},
	)

	// Extractor metrics
	m.ExtractorRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whisper_extractor_runs_total",
			Help: "Total number of extractor invocations",
		},
		[]string{"extractor", "status"},
	)

	m.ExtractorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whisper_extractor_duration_seconds",
			Help:    "Duration of extractor invocations in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"extractor"},
	)

	// Server metrics
	m.ServerUptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "whisper_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime periodically updates the server uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// RecordGrpcRequest records a gRPC request with its status
func (m *Metrics) RecordGrpcRequest(method string, status string, duration time.Duration) {
	m.GrpcRequestsTotal.WithLabelValues(method, status).Inc()
	m.GrpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordDigest records one completed tree digest
func (m *Metrics) RecordDigest(status string, nodeCount int, depth int, duration time.Duration) {
	m.DigestsTotal.WithLabelValues(status).Inc()
	m.DigestDuration.Observe(duration.Seconds())
	m.NodesTotal.Add(float64(nodeCount))
	m.TreeSizeObserved.Observe(float64(nodeCount))
	m.TreeDepthObserved.Observe(float64(depth))
}

// RecordExtractorRun records one extractor invocation
func (m *Metrics) RecordExtractorRun(extractor string, status string, duration time.Duration) {
	m.ExtractorRunsTotal.WithLabelValues(extractor, status).Inc()
	m.ExtractorDuration.WithLabelValues(extractor).Observe(duration.Seconds())
}
