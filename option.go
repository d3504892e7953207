package middlegem

// StackOption configures behavior of a Stack.
type StackOption func(*stackConfig)

type stackConfig struct {
	middlewares []any
	logger      Logger
	collectors  []MetricsCollector
	recover     bool
	newID       IDGenerator
}

func parseStackConfig(opts []StackOption) stackConfig {
	cfg := stackConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger
	}
	if cfg.newID == nil {
		cfg.newID = DefaultIDGenerator
	}
	return cfg
}

// WithMiddlewares sets the initial middleware sequence of a Stack.
// Entries are not validated here; Stack.Call checks them on every call.
func WithMiddlewares(middlewares ...any) StackOption {
	return func(cfg *stackConfig) {
		cfg.middlewares = append(cfg.middlewares, middlewares...)
	}
}
