// Package metrics exposes the service's Prometheus instrumentation:
// HTTP timings, database query timings and the business counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const namespace = "field_track"

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Business metrics
	ProjectsCreatedTotal prometheus.Counter
	WorkLogsCreatedTotal *prometheus.CounterVec
	TablesCompleted      *prometheus.GaugeVec
	BackupRestoresTotal  *prometheus.CounterVec

	logger *zap.Logger
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, nil)
}

// NewWithRegistry creates and registers all metrics with a custom
// registry, which keeps tests isolated from the default one
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	factory := promauto.With(registerer)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_query_duration_seconds",
				Help:      "Database query duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation", "table"},
		),
		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_query_errors_total",
				Help:      "Total number of failed database queries",
			},
			[]string{"operation", "table"},
		),
		ProjectsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "projects_created_total",
				Help:      "Total number of projects created",
			},
		),
		WorkLogsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "work_logs_created_total",
				Help:      "Total number of work logs created",
			},
			[]string{"type"},
		),
		TablesCompleted: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tables_completed",
				Help:      "Current number of completed tables per project",
			},
			[]string{"project_id"},
		),
		BackupRestoresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backup_restores_total",
				Help:      "Total number of backup restore operations",
			},
			[]string{"mode", "result"},
		),
		logger: logger,
	}
}

// safeExecute runs a metric operation, recovering from registration or
// label panics so metrics can never take down a request
func (m *Metrics) safeExecute(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("Metric operation failed",
				zap.String("operation", name),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}

// RecordHTTPRequest records one served request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, categorizeStatus(statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// RecordDBQuery records one database query; implements database.MetricsRecorder
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
		if err != nil {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}

// IncrementProjectCreated increments the project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectsCreatedTotal.Inc()
	})
}

// IncrementWorkLogCreated increments the work-log creation counter
func (m *Metrics) IncrementWorkLogCreated(logType string) {
	m.safeExecute("IncrementWorkLogCreated", func() {
		m.WorkLogsCreatedTotal.WithLabelValues(logType).Inc()
	})
}

// SetTablesCompleted sets the completed-table gauge for a project
func (m *Metrics) SetTablesCompleted(projectID string, count int) {
	m.safeExecute("SetTablesCompleted", func() {
		m.TablesCompleted.WithLabelValues(projectID).Set(float64(count))
	})
}

// IncrementBackupRestore counts one restore attempt
func (m *Metrics) IncrementBackupRestore(mode, result string) {
	m.safeExecute("IncrementBackupRestore", func() {
		m.BackupRestoresTotal.WithLabelValues(mode, result).Inc()
	})
}

// ShouldSkipEndpoint excludes operational endpoints from HTTP metrics
func ShouldSkipEndpoint(path string) bool {
	return path == "/metrics" || path == "/health" || path == "/ready"
}

// categorizeStatus converts a status code to its class (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
