package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dinner_club"

// Metrics owns its registry so several app instances (e2e suites) can
// coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	ReservationsCreated   *prometheus.CounterVec
	ReservationsCancelled *prometheus.CounterVec
	WaitlistPromotions    prometheus.Counter
	EventsDeleted         prometheus.Counter
	NotificationsRelayed  *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ReservationsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_created_total",
				Help:      "Reservations created, by resulting status",
			},
			[]string{"status"},
		),
		ReservationsCancelled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reservations_cancelled_total",
				Help:      "Reservations cancelled, by caller path",
			},
			[]string{"path"},
		),
		WaitlistPromotions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "waitlist_promotions_total",
				Help:      "Waitlist entries promoted to confirmed",
			},
		),
		EventsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_deleted_total",
				Help:      "Past events removed by the retention job",
			},
		),
		NotificationsRelayed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_relayed_total",
				Help:      "Notification jobs handed to the broker, by result",
			},
			[]string{"result"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) IncCreated(status string) {
	m.ReservationsCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) IncCancelled(path string) {
	m.ReservationsCancelled.WithLabelValues(path).Inc()
}

func (m *Metrics) AddPromotions(n int) {
	if n > 0 {
		m.WaitlistPromotions.Add(float64(n))
	}
}

func (m *Metrics) AddEventsDeleted(n int64) {
	if n > 0 {
		m.EventsDeleted.Add(float64(n))
	}
}

func (m *Metrics) IncRelayed(result string) {
	m.NotificationsRelayed.WithLabelValues(result).Inc()
}
