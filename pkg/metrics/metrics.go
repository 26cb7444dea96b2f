package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов Prometheus сервиса
type Metrics struct {
	ServiceName string

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// PostgreSQL (счета)
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	// MongoDB
	MongoCommandDuration *prometheus.HistogramVec

	// Бизнес-метрики
	ReservationsCreated *prometheus.CounterVec
	HookFailures        *prometheus.CounterVec
	CacheRequests       *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре (в тестах - prometheus.NewRegistry())
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		ServiceName: serviceName,

		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "SQL query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation", "status"}),

		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established SQL connections",
		}, []string{"service"}),

		DBInUseConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of SQL connections in use",
		}, []string{"service"}),

		DBIdleConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle SQL connections",
		}, []string{"service"}),

		MongoCommandDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mongo_command_duration_seconds",
			Help:    "MongoDB command duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "command", "status"}),

		ReservationsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Number of reservations created",
		}, []string{"service", "business_type", "kind"}),

		HookFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "post_commit_hook_failures_total",
			Help: "Number of failed post-commit hooks",
		}, []string{"service", "hook"}),

		CacheRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_cache_requests_total",
			Help: "Availability cache lookups by result",
		}, []string{"service", "result"}),
	}
}

// IncReservation безопасен для nil-получателя (метрики выключены)
func (m *Metrics) IncReservation(businessType, kind string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(m.ServiceName, businessType, kind).Inc()
}

// IncHookFailure безопасен для nil-получателя
func (m *Metrics) IncHookFailure(hook string) {
	if m == nil {
		return
	}
	m.HookFailures.WithLabelValues(m.ServiceName, hook).Inc()
}

// IncCache безопасен для nil-получателя; result: hit | miss | error
func (m *Metrics) IncCache(result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(m.ServiceName, result).Inc()
}
