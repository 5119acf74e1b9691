package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreErrorRate counts blob store errors by backend and operation.
	StoreErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postdeck_store_error_rate_total",
		Help: "Total number of blob store errors by backend and operation",
	}, []string{"backend", "operation"})

	// StoreOperationLatency records blob store latency by operation and key.
	StoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postdeck_store_operation_latency_seconds",
		Help:    "Blob store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "key"})

	// SeedFallbacks counts reads served from the built-in demo data because
	// the store was unavailable or held no collection.
	SeedFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postdeck_seed_fallbacks_total",
		Help: "Total number of reads served from seed data by collection",
	}, []string{"collection"})

	// WebSocketConnectionsTotal is the gauge of active WebSocket connections.
	WebSocketConnectionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "postdeck_websocket_connections_total",
		Help: "Total number of active WebSocket connections",
	})

	// EventsPublished counts broadcast events by type and transport.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postdeck_events_published_total",
		Help: "Total number of events published by type and transport",
	}, []string{"event_type", "transport"})

	// WebSocketBackpressureDrops counts clients dropped due to backpressure.
	WebSocketBackpressureDrops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "postdeck_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket clients dropped due to backpressure",
	})
)

// StoreMetrics records blob store operation latency and errors.
type StoreMetrics struct {
	backend string
}

// NewStoreMetrics returns a StoreMetrics instance for the given backend name.
func NewStoreMetrics(backend string) *StoreMetrics {
	return &StoreMetrics{backend: backend}
}

// ObserveOperation records the latency of a store operation.
func (m *StoreMetrics) ObserveOperation(operation, key string, start time.Time) {
	StoreOperationLatency.WithLabelValues(operation, key).Observe(time.Since(start).Seconds())
}

// RecordError increments the store error counter for the operation.
func (m *StoreMetrics) RecordError(operation string) {
	StoreErrorRate.WithLabelValues(m.backend, operation).Inc()
}

// TrackOperation returns a function that records operation latency when called (e.g. defer).
func (m *StoreMetrics) TrackOperation(operation, key string) func() {
	start := time.Now()
	return func() {
		m.ObserveOperation(operation, key, start)
	}
}
