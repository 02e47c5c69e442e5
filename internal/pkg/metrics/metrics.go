package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	// method, path, status_code
	HTTPRequestsTotal *prometheus.CounterVec

	// method, path
	HTTPRequestDuration *prometheus.HistogramVec

	// outcome: committed, conflict, failed, exhausted
	TxAttemptsTotal *prometheus.CounterVec

	// operation: reserve, purchase, rate, register; result: ok or an error code
	BookingOperationsTotal *prometheus.CounterVec

	// result: hit, miss, error
	SeatMapCacheTotal *prometheus.CounterVec

	// status: sent, retry, failed
	NotificationsTotal *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		TxAttemptsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tx_attempts_total",
				Help: "Transaction attempts by outcome",
			},
			[]string{"outcome"},
		),
		BookingOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_operations_total",
				Help: "Booking operations by result",
			},
			[]string{"operation", "result"},
		),
		SeatMapCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seatmap_cache_requests_total",
				Help: "Seat map cache lookups by result",
			},
			[]string{"result"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Notification deliveries by status",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TxAttemptsTotal,
		m.BookingOperationsTotal,
		m.SeatMapCacheTotal,
		m.NotificationsTotal,
	)

	return m
}

func (m *Metrics) ObserveTxAttempt(outcome string) {
	m.TxAttemptsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveOperation(operation, result string) {
	m.BookingOperationsTotal.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveCache(result string) {
	m.SeatMapCacheTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveNotification(status string) {
	m.NotificationsTotal.WithLabelValues(status).Inc()
}
