// Package metrics exposes Prometheus instrumentation for the fulfillment
// workflow: transition and override counters labeled by target status.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkflowMetrics counts accepted lifecycle operations.
type WorkflowMetrics struct {
	OrdersCreated *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	Overrides     *prometheus.CounterVec
}

// NewWorkflowMetrics registers the workflow counters on the default
// registry. Call once from the composition root.
func NewWorkflowMetrics() *WorkflowMetrics {
	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atelier",
		Subsystem: "workflow",
		Name:      "orders_created_total",
		Help:      "Total number of custom orders created.",
	}, []string{"clothing_type"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atelier",
		Subsystem: "workflow",
		Name:      "order_transitions_total",
		Help:      "Total number of accepted order status transitions.",
	}, []string{"target", "role"})
	overrides := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "atelier",
		Subsystem: "workflow",
		Name:      "order_overrides_total",
		Help:      "Total number of administrative status overrides.",
	}, []string{"target"})

	prometheus.MustRegister(ordersCreated, transitions, overrides)
	return &WorkflowMetrics{
		OrdersCreated: ordersCreated,
		Transitions:   transitions,
		Overrides:     overrides,
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
