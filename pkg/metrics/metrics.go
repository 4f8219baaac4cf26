package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsTotal      *prometheus.CounterVec
	CalendarCallsTotal *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by route, method and status code.",
			ConstLabels: constLabels,
		}, []string{"route", "method", "code"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by route and method.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),

		BookingsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "Booking attempts by outcome (confirmed, validation_failed, calendar_error, conflict, persistence_error).",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		CalendarCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_api_calls_total",
			Help:        "Google Calendar API calls by operation and result.",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
	}
}

// ObserveBooking инкрементирует счетчик бронирований по исходу
func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveCalendarCall инкрементирует счетчик вызовов Calendar API
func (m *Metrics) ObserveCalendarCall(operation, result string) {
	if m == nil {
		return
	}
	m.CalendarCallsTotal.WithLabelValues(operation, result).Inc()
}
