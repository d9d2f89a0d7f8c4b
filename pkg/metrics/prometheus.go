// Package metrics provides Prometheus metrics for the ROSTER address book
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the ROSTER service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core Business Metrics
	commandsExecuted *prometheus.CounterVec
	commandFailures  *prometheus.CounterVec
	gradesRecorded   prometheus.Counter

	// Operational Health Metrics
	personsTotal prometheus.Gauge
	groupsTotal  prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Snapshot Metrics
	snapshotSaveDuration prometheus.Histogram
	snapshotLoadDuration prometheus.Histogram
	snapshotLastUnix     prometheus.Gauge

	// System Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "roster",
		subsystem:        "addressbook",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.commandsExecuted = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "commands_executed_total",
			Help:      "Total number of commands executed successfully, by command word",
		},
		[]string{"command"},
	)

	m.commandFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "command_failures_total",
			Help:      "Total number of command failures, by command word and error kind",
		},
		[]string{"command", "kind"},
	)

	m.gradesRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "grades_recorded_total",
		Help:      "Total number of assignment grades recorded",
	})

	m.personsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "persons_total",
		Help:      "Current number of persons in the address book",
	})

	m.groupsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "groups_total",
		Help:      "Current number of groups in the address book",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.snapshotSaveDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_save_duration_milliseconds",
		Help:      "Duration of snapshot saves in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.snapshotLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_load_duration_milliseconds",
		Help:      "Duration of snapshot loads in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unix_seconds",
		Help:      "Unix time of the last successful snapshot save",
	})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Current memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordCommand increments the executed counter for a command word.
func RecordCommand(word string) {
	if globalManager.enabled {
		globalManager.commandsExecuted.WithLabelValues(word).Inc()
	}
}

// RecordCommandFailure increments the failure counter for a command word and
// error kind.
func RecordCommandFailure(word, kind string) {
	if globalManager.enabled {
		globalManager.commandFailures.WithLabelValues(word, kind).Inc()
	}
}

// RecordGrade increments the recorded grade counter.
func RecordGrade() {
	if globalManager.enabled {
		globalManager.gradesRecorded.Inc()
	}
}

// UpdatePersonsTotal sets the current person count.
func UpdatePersonsTotal(count int) {
	if globalManager.enabled {
		globalManager.personsTotal.Set(float64(count))
	}
}

// UpdateGroupsTotal sets the current group count.
func UpdateGroupsTotal(count int) {
	if globalManager.enabled {
		globalManager.groupsTotal.Set(float64(count))
	}
}

// RecordHTTPRequest increments the request counter for an endpoint.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes the duration of a request in
// milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// ObserveSnapshotSave records a completed snapshot save.
func ObserveSnapshotSave(d time.Duration) {
	if globalManager.enabled {
		globalManager.snapshotSaveDuration.Observe(float64(d.Milliseconds()))
		globalManager.snapshotLastUnix.Set(float64(time.Now().Unix()))
	}
}

// ObserveSnapshotLoad records a completed snapshot load.
func ObserveSnapshotLoad(d time.Duration) {
	if globalManager.enabled {
		globalManager.snapshotLoadDuration.Observe(float64(d.Milliseconds()))
	}
}

// UpdateSystemMemoryUsage sets the current allocated bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime observes a GC pause duration in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
