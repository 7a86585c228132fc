package metrics

import (
	"net/http"

	"food-app/session"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests and multiple instances do not collide
// on the default one.
type Metrics struct {
	registry *prometheus.Registry

	actions       *prometheus.CounterVec
	payments      prometheus.Counter
	paymentAmount prometheus.Histogram
	cartItems     prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "food_session_actions_total",
				Help: "Session actions dispatched, by action name",
			},
			[]string{"action"},
		),
		payments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "food_session_payments_total",
			Help: "Completed checkouts",
		}),
		paymentAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "food_session_payment_amount",
			Help:    "Order total at payment, in minor units",
			Buckets: prometheus.ExponentialBuckets(500, 2, 10),
		}),
		cartItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "food_session_payment_items",
			Help:    "Number of items in the cart at payment",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		}),
	}
	m.registry.MustRegister(m.actions, m.payments, m.paymentAmount, m.cartItems)
	return m
}

// Observe implements session.Observer.
func (m *Metrics) Observe(a session.Action, before, _ session.State, notice session.Notice) {
	m.actions.WithLabelValues(a.Name()).Inc()
	// a payment confirmed on an empty cart charges nothing and is not an order
	if notice == session.NoticePaymentSuccess && before.ItemCount() > 0 {
		m.payments.Inc()
		m.paymentAmount.Observe(float64(before.Total()))
		m.cartItems.Observe(float64(before.ItemCount()))
	}
}

// TrackSessions exports the number of open sessions, read at scrape time.
func (m *Metrics) TrackSessions(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "food_sessions_active",
			Help: "Sessions held in memory",
		},
		func() float64 { return float64(count()) },
	))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
