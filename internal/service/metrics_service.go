package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store write outcomes used as the result label.
const (
	StoreWriteOK    = "ok"
	StoreWriteError = "error"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry            *prometheus.Registry
	handler             http.Handler
	requestDuration     *prometheus.HistogramVec
	requestTotal        *prometheus.CounterVec
	storeWrites         *prometheus.CounterVec
	storeWriteDuration  *prometheus.HistogramVec
	mutations           *prometheus.CounterVec
	activeNotifications prometheus.Gauge

	requestCount         uint64
	requestDurationTotal uint64
	storeWriteCount      uint64
	storeWriteFailures   uint64
	mutationCount        uint64
	notificationsActive  int64
}

// MetricsSnapshot is a JSON-friendly summary of the collectors.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	StoreWrites              uint64    `json:"storeWrites"`
	StoreWriteFailures       uint64    `json:"storeWriteFailures"`
	Mutations                uint64    `json:"mutations"`
	ActiveNotifications      int64     `json:"activeNotifications"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeWrites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_store_writes_total",
		Help: "Snapshot writes to the persistent store",
	}, []string{"key", "result"})

	storeWriteDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planner_store_write_seconds",
		Help:    "Latency of snapshot writes",
		Buckets: prometheus.DefBuckets,
	}, []string{"key"})

	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_mutations_total",
		Help: "Applied state mutations by operation",
	}, []string{"operation"})

	activeNotifications := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planner_notifications_active",
		Help: "Notifications currently queued",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storeWrites, storeWriteDuration, mutations, activeNotifications, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:            registry,
		handler:             handler,
		requestDuration:     requestDuration,
		requestTotal:        requestTotal,
		storeWrites:         storeWrites,
		storeWriteDuration:  storeWriteDuration,
		mutations:           mutations,
		activeNotifications: activeNotifications,
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveStoreWrite records one snapshot write and its outcome.
func (m *MetricsService) ObserveStoreWrite(key, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.storeWrites.WithLabelValues(key, result).Inc()
	m.storeWriteDuration.WithLabelValues(key).Observe(duration.Seconds())
	atomic.AddUint64(&m.storeWriteCount, 1)
	if result != StoreWriteOK {
		atomic.AddUint64(&m.storeWriteFailures, 1)
	}
}

// RecordMutation counts an applied mutation.
func (m *MetricsService) RecordMutation(operation string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(operation).Inc()
	atomic.AddUint64(&m.mutationCount, 1)
}

// SetActiveNotifications tracks the notification queue length.
func (m *MetricsService) SetActiveNotifications(n int) {
	if m == nil {
		return
	}
	m.activeNotifications.Set(float64(n))
	atomic.StoreInt64(&m.notificationsActive, int64(n))
}

// Snapshot returns aggregated metrics suitable for the health endpoint.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		StoreWrites:              atomic.LoadUint64(&m.storeWriteCount),
		StoreWriteFailures:       atomic.LoadUint64(&m.storeWriteFailures),
		Mutations:                atomic.LoadUint64(&m.mutationCount),
		ActiveNotifications:      atomic.LoadInt64(&m.notificationsActive),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
