package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках вызовы ничего не делают.
type Metrics struct {
	serviceName string

	// HTTP
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// База данных
	dbQueryDuration   *prometheus.HistogramVec
	dbQueryErrors     *prometheus.CounterVec
	dbOpenConnections *prometheus.GaugeVec
	dbInUse           *prometheus.GaugeVec
	dbIdle            *prometheus.GaugeVec
	dbWaitCount       *prometheus.GaugeVec

	// Бизнес-метрики
	appointmentsCreated  *prometheus.CounterVec
	bookingsRejected     *prometheus.CounterVec
	notificationsSent    *prometheus.CounterVec
	notificationDuration *prometheus.HistogramVec
	activeSessions       *prometheus.GaugeVec
}

// New создаёт метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создаёт метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		httpRequestsInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		}, []string{"service"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),
		dbInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		dbIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		appointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grooming_appointments_created_total",
			Help: "Total number of created appointments",
		}, []string{"service", "service_type"}),
		bookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grooming_bookings_rejected_total",
			Help: "Total number of rejected booking attempts",
		}, []string{"service", "reason"}),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grooming_notifications_total",
			Help: "Total number of booking notifications by sink and result",
		}, []string{"service", "sink", "status"}),
		notificationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grooming_notification_duration_seconds",
			Help:    "Latency of booking notifications",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "sink"}),
		activeSessions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "grooming_active_sessions",
			Help: "Number of booking sessions held in memory",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.appointmentsCreated,
		m.bookingsRejected,
		m.notificationsSent,
		m.notificationDuration,
		m.activeSessions,
	)

	return m
}

// HTTPRequestStarted увеличивает счётчик запросов в работе
func (m *Metrics) HTTPRequestStarted() {
	if m == nil {
		return
	}
	m.httpRequestsInFlight.WithLabelValues(m.serviceName).Inc()
}

// HTTPRequestFinished фиксирует завершённый запрос
func (m *Metrics) HTTPRequestFinished(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsInFlight.WithLabelValues(m.serviceName).Dec()
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность и результат запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
	m.dbIdle.WithLabelValues(m.serviceName).Set(float64(idle))
	m.dbWaitCount.WithLabelValues(m.serviceName).Set(float64(waitCount))
}

// AppointmentCreated увеличивает счётчик созданных записей
func (m *Metrics) AppointmentCreated(serviceType string) {
	if m == nil {
		return
	}
	m.appointmentsCreated.WithLabelValues(m.serviceName, serviceType).Inc()
}

// BookingRejected увеличивает счётчик отклонённых попыток записи
func (m *Metrics) BookingRejected(reason string) {
	if m == nil {
		return
	}
	m.bookingsRejected.WithLabelValues(m.serviceName, reason).Inc()
}

// NotificationSent фиксирует результат отправки уведомления в sink
func (m *Metrics) NotificationSent(sink string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.notificationsSent.WithLabelValues(m.serviceName, sink, status).Inc()
	m.notificationDuration.WithLabelValues(m.serviceName, sink).Observe(duration.Seconds())
}

// SetActiveSessions обновляет количество сессий в памяти
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.WithLabelValues(m.serviceName).Set(float64(n))
}
