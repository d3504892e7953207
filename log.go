package middlegem

import "log/slog"

// Logger defines an interface for logging at different severity levels.
// It is satisfied by *slog.Logger.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)
	// Info logs a message at info level.
	Info(msg string, args ...any)
	// Warn logs a message at warning level.
	Warn(msg string, args ...any)
	// Error logs a message at error level.
	Error(msg string, args ...any)
}

// WithLogger overrides the logger used by a Stack.
func WithLogger(l Logger) StackOption {
	return func(cfg *stackConfig) {
		cfg.logger = l
	}
}

// SetDefaultLogger sets the default logger for all stacks.
// slog.Default() is used by default. May be overridden per-stack
// using WithLogger.
func SetDefaultLogger(l Logger) {
	logger = l
}

var logger Logger = slog.Default()

func newMetricsLogger(log Logger) MetricsCollector {
	return func(m *CallMetrics) {
		if m.Err == nil {
			log.Debug("MIDDLEGEM: Call succeeded",
				"call_id", m.CallID,
				"middlewares", m.Middlewares,
				"duration", m.Duration)
			return
		}
		log.Error("MIDDLEGEM: Call failed",
			"call_id", m.CallID,
			"middlewares", m.Middlewares,
			"completed", m.Completed,
			"error", m.Err,
			"duration", m.Duration)
	}
}
