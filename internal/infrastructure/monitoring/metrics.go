package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GriffinCanCode/kernelbridge/internal/lifecycle"
)

// Routes an operation can take through the bridge
const (
	RouteKernel  = "kernel"
	RouteForward = "forward"
)

// Outcomes recorded for operations and creations
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the bridge's Prometheus metrics. A nil *Metrics records nothing.
type Metrics struct {
	// Operation metrics
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec

	// Creation metrics
	FrameworksCreated *prometheus.CounterVec
	FrameworksActive  prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics registers the bridge metrics with reg. A nil reg gets a fresh
// private registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	m := &Metrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kernelbridge_operations_total",
				Help: "Total number of framework operations by route and outcome",
			},
			[]string{"op", "route", "outcome"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kernelbridge_operation_duration_seconds",
				Help:    "Framework operation duration in seconds",
				Buckets: []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5, 30},
			},
			[]string{"op", "route"},
		),
		OperationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kernelbridge_operation_errors_total",
				Help: "Failed framework operations by error kind",
			},
			[]string{"op", "route", "kind"},
		),
		FrameworksCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kernelbridge_frameworks_created_total",
				Help: "Framework creation attempts by outcome and failure kind",
			},
			[]string{"outcome", "kind"},
		),
		FrameworksActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kernelbridge_frameworks_active",
				Help: "Frameworks that have been started and not yet stopped",
			},
		),
	}

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// RecordOperation records one routed operation
func (m *Metrics) RecordOperation(op, route string, duration time.Duration, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
		m.OperationErrors.WithLabelValues(op, route, kindLabel(err)).Inc()
	}
	m.Operations.WithLabelValues(op, route, outcome).Inc()
	m.OperationDuration.WithLabelValues(op, route).Observe(duration.Seconds())
}

// RecordCreate records one framework creation attempt
func (m *Metrics) RecordCreate(err error) {
	if m == nil {
		return
	}

	if err != nil {
		m.FrameworksCreated.WithLabelValues(OutcomeError, kindLabel(err)).Inc()
		return
	}
	m.FrameworksCreated.WithLabelValues(OutcomeOK, "").Inc()
}

// IncActive marks a framework as started
func (m *Metrics) IncActive() {
	if m == nil {
		return
	}
	m.FrameworksActive.Inc()
}

// DecActive marks a framework as stopped
func (m *Metrics) DecActive() {
	if m == nil {
		return
	}
	m.FrameworksActive.Dec()
}

// Handler returns an HTTP handler exposing the metrics. It falls back to the
// default gatherer when the registerer cannot gather.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// kindLabel maps an error onto a low-cardinality label
func kindLabel(err error) string {
	if kind := lifecycle.KindOf(err); kind != 0 {
		return kind.String()
	}
	return "passthrough"
}
