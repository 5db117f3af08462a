package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CheckoutMetrics struct {
	Checkouts      *prometheus.CounterVec
	CartRejections *prometheus.CounterVec
	DurationMS     *prometheus.HistogramVec
}

// NewCheckoutMetrics registers the checkout collectors on reg, or on the
// default registry when reg is nil.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "retail",
		Subsystem: "checkout",
		Name:      "transactions_total",
		Help:      "Total number of checkout transactions by final status.",
	}, []string{"status"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "retail",
		Subsystem: "checkout",
		Name:      "cart_rejections_total",
		Help:      "Total number of cart additions rejected at validation.",
	}, []string{"reason"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "retail",
		Subsystem: "checkout",
		Name:      "transaction_duration_ms",
		Help:      "Checkout transaction duration in milliseconds.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"status"})

	reg.MustRegister(checkouts, rejections, duration)
	return &CheckoutMetrics{Checkouts: checkouts, CartRejections: rejections, DurationMS: duration}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
