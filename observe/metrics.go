// Package observe provides Prometheus instrumentation for middlegem stacks.
package observe

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jacoblockard99/middlegem"
)

// Metrics holds all stack Prometheus metrics.
type Metrics struct {
	CallsTotal     *prometheus.CounterVec
	CallDuration   prometheus.Histogram
	MiddlewaresRun prometheus.Counter
}

// NewMetrics creates and registers all stack metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "middlegem_calls_total",
				Help: "Total number of stack calls by outcome.",
			},
			[]string{"outcome"},
		),
		CallDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "middlegem_call_duration_seconds",
				Help:    "Stack call duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
		MiddlewaresRun: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "middlegem_middlewares_run_total",
				Help: "Total number of middlewares run to completion.",
			},
		),
	}

	reg.MustRegister(
		m.CallsTotal,
		m.CallDuration,
		m.MiddlewaresRun,
	)

	return m
}

// Collector returns a metrics collector that records every stack call.
// Attach it with middlegem.WithMetricsCollector.
//
// Calls are labeled by outcome: "ok", "invalid_middleware",
// "unpermitted_middleware", "invalid_output", "panic", or
// "middleware_error".
func (m *Metrics) Collector() middlegem.MetricsCollector {
	return func(cm *middlegem.CallMetrics) {
		m.CallsTotal.WithLabelValues(outcome(cm.Err)).Inc()
		m.CallDuration.Observe(cm.Duration.Seconds())
		m.MiddlewaresRun.Add(float64(cm.Completed))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, middlegem.ErrInvalidMiddleware):
		return "invalid_middleware"
	case errors.Is(err, middlegem.ErrUnpermittedMiddleware):
		return "unpermitted_middleware"
	case errors.Is(err, middlegem.ErrInvalidMiddlewareOutput):
		return "invalid_output"
	}
	var rec *middlegem.RecoveryError
	if errors.As(err, &rec) {
		return "panic"
	}
	return "middleware_error"
}
