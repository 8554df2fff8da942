package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/averra-labs/trainhub/pkg/idgen"
)

type allocatorMetricsSource interface {
	Kinds() []idgen.Kind
	UsagePercent(idgen.Kind) float64
	Remaining(idgen.Kind) int64
}

type entityCounter interface {
	Kind() string
	Count() int
}

// SystemMetricsSnapshot aggregates counters for the system endpoint.
type SystemMetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	CapacityWarnings         uint64    `json:"capacity_warnings"`
	ExportsRendered          uint64    `json:"exports_rendered"`
	Goroutines               int       `json:"goroutines"`
	UptimeSeconds            float64   `json:"uptime_seconds"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// MetricsService encapsulates Prometheus instrumentation and provides
// lightweight snapshots for API consumption.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	capacityWarnings *prometheus.CounterVec
	exportsRendered  *prometheus.CounterVec
	startedAt        time.Time

	requestCount         uint64
	requestDurationTotal uint64
	warningCount         uint64
	exportCount          uint64
}

// NewMetricsService registers core Prometheus collectors. The allocator and
// entity gauges read live values at scrape time.
func NewMetricsService(alloc allocatorMetricsSource, counters ...entityCounter) *MetricsService {
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

	capacityWarnings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "id_capacity_warnings_total",
		Help: "Capacity warnings emitted by the id allocator",
	}, []string{"kind"})

	exportsRendered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "exports_rendered_total",
		Help: "Export files rendered by dataset and format",
	}, []string{"dataset", "format"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, capacityWarnings, exportsRendered, goroutines)

	if alloc != nil {
		for _, kind := range alloc.Kinds() {
			kind := kind
			registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name:        "id_range_usage_ratio",
				Help:        "Issued ids as a fraction of range capacity",
				ConstLabels: prometheus.Labels{"kind": string(kind)},
			}, func() float64 {
				return alloc.UsagePercent(kind)
			}))
			registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name:        "id_range_remaining",
				Help:        "Ids still issuable in the range",
				ConstLabels: prometheus.Labels{"kind": string(kind)},
			}, func() float64 {
				return float64(alloc.Remaining(kind))
			}))
		}
	}

	for _, counter := range counters {
		counter := counter
		registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "entities_total",
			Help:        "Entities held in memory by kind",
			ConstLabels: prometheus.Labels{"kind": counter.Kind()},
		}, func() float64 {
			return float64(counter.Count())
		}))
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:         registry,
		handler:          handler,
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		capacityWarnings: capacityWarnings,
		exportsRendered:  exportsRendered,
		startedAt:        time.Now().UTC(),
	}
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

// ObserveHTTPRequest records request metrics and aggregates simple stats for
// snapshots.
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

// RecordCapacityWarning counts an allocator capacity warning. Wired as the
// allocator's warning hook.
func (m *MetricsService) RecordCapacityWarning(kind idgen.Kind, usage float64, remaining int64) {
	if m == nil {
		return
	}
	m.capacityWarnings.WithLabelValues(string(kind)).Inc()
	atomic.AddUint64(&m.warningCount, 1)
}

// RecordExport counts a rendered export file.
func (m *MetricsService) RecordExport(dataset, format string) {
	if m == nil {
		return
	}
	m.exportsRendered.WithLabelValues(dataset, format).Inc()
	atomic.AddUint64(&m.exportCount, 1)
}

// Snapshot returns aggregated metrics for the system endpoint.
func (m *MetricsService) Snapshot() SystemMetricsSnapshot {
	if m == nil {
		return SystemMetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return SystemMetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		CapacityWarnings:         atomic.LoadUint64(&m.warningCount),
		ExportsRendered:          atomic.LoadUint64(&m.exportCount),
		Goroutines:               runtime.NumGoroutine(),
		UptimeSeconds:            time.Since(m.startedAt).Seconds(),
		GeneratedAt:              time.Now().UTC(),
	}
}
