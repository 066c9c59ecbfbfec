package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal  prometheus.Counter
	BookingsRejectedTotal *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of confirmed bookings",
			ConstLabels: constLabels,
		}),

		BookingsRejectedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Total number of rejected booking attempts",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}

// BookingCreated инкрементирует счётчик успешных бронирований.
// Безопасен при выключенных метриках (nil-получатель).
func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.Inc()
}

// BookingRejected инкрементирует счётчик отказов с причиной отказа.
// Безопасен при выключенных метриках (nil-получатель).
func (m *Metrics) BookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejectedTotal.WithLabelValues(reason).Inc()
}
