package middlegem

import "time"

// CallMetrics holds metrics for a single stack call.
type CallMetrics struct {
	// CallID uniquely identifies the call. It appears in log lines too,
	// so collector output can be correlated with logs.
	CallID string
	// Start is the time the call began.
	Start time.Time
	// Duration is the total time the call took, including validation
	// and sorting.
	Duration time.Duration

	// Middlewares is the number of middlewares in the sorted chain.
	// Zero when the call failed validation before sorting.
	Middlewares int
	// Completed is the number of middlewares that ran to completion.
	Completed int

	// Err is the terminal error of the call, nil on success.
	Err error
}

// MetricsCollector defines a function that collects metrics for a single
// stack call. Collectors run after the call finishes, successful or not.
type MetricsCollector func(metrics *CallMetrics)

// WithMetricsCollector adds a metrics collector to a Stack.
// Can be used multiple times to add multiple collectors.
func WithMetricsCollector(collector MetricsCollector) StackOption {
	return func(cfg *stackConfig) {
		cfg.collectors = append(cfg.collectors, collector)
	}
}

func newMetricsDistributor(collectors ...MetricsCollector) MetricsCollector {
	return func(m *CallMetrics) {
		for _, c := range collectors {
			c(m)
		}
	}
}
