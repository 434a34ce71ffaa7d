package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records pricing and order placement outcomes.
type CheckoutMetrics struct {
	quoteDuration *prometheus.HistogramVec
	ordersPlaced  *prometheus.CounterVec
	failures      *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	quoteDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_quote_duration_seconds",
		Help:    "Duration of checkout quote computation in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"order_type"})
	ordersPlaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders successfully placed.",
	}, []string{"order_type"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Checkout operations that returned an error.",
	}, []string{"operation"})
	reg.MustRegister(quoteDuration, ordersPlaced, failures)
	return &CheckoutMetrics{
		quoteDuration: quoteDuration,
		ordersPlaced:  ordersPlaced,
		failures:      failures,
	}
}

// ObserveQuoteDuration records how long a quote took for the given order type.
func (c *CheckoutMetrics) ObserveQuoteDuration(orderType string, duration time.Duration) {
	if c == nil || c.quoteDuration == nil {
		return
	}
	c.quoteDuration.WithLabelValues(normalizeLabel(orderType)).Observe(duration.Seconds())
}

// IncOrderPlaced increments the placed-order counter for the given order type.
func (c *CheckoutMetrics) IncOrderPlaced(orderType string) {
	if c == nil || c.ordersPlaced == nil {
		return
	}
	c.ordersPlaced.WithLabelValues(normalizeLabel(orderType)).Inc()
}

// IncFailure increments the failure counter for the named operation.
func (c *CheckoutMetrics) IncFailure(operation string) {
	if c == nil || c.failures == nil {
		return
	}
	c.failures.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
