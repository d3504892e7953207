package middlegem

import (
	"context"
	"fmt"
	"time"
)

// Stack chains middlewares over an argument list. The execution order is
// decided by the stack's definition, never by insertion order.
//
// A Stack is not safe for concurrent use. Callers that share one stack
// between goroutines must serialize access themselves.
type Stack struct {
	// Middlewares is the middleware sequence in insertion order. It may
	// be read and modified freely between calls. Entries are opaque until
	// Call, which validates every one of them before running anything, so
	// values that do not satisfy Middleware can be inserted and fixed up
	// later.
	Middlewares []any

	definition Definition
	logger     Logger
	collect    MetricsCollector
	recover    bool
	newID      IDGenerator
}

// NewStack creates a stack whose calls are ordered by definition.
// The definition is fixed for the stack's lifetime.
//
// Returns *InvalidDefinitionError when definition is nil, a typed nil, or
// otherwise fails the Definition contract. Middlewares supplied through
// WithMiddlewares are not validated here.
//
// Example:
//
//	stack, err := middlegem.NewStack(def,
//		middlegem.WithMiddlewares(&Brackets{}, &Multiplier{Factor: 10}),
//		middlegem.WithRecover(),
//	)
func NewStack(definition Definition, opts ...StackOption) (*Stack, error) {
	if !ValidDefinition(definition) {
		return nil, &InvalidDefinitionError{Definition: definition}
	}
	cfg := parseStackConfig(opts)
	collectors := append(cfg.collectors, newMetricsLogger(cfg.logger))
	return &Stack{
		Middlewares: cfg.middlewares,
		definition:  definition,
		logger:      cfg.logger,
		collect:     newMetricsDistributor(collectors...),
		recover:     cfg.recover,
		newID:       cfg.newID,
	}, nil
}

// Definition returns the definition the stack was constructed with.
func (s *Stack) Definition() Definition {
	return s.definition
}

// Use appends middlewares to the stack's sequence.
func (s *Stack) Use(middlewares ...any) {
	s.Middlewares = append(s.Middlewares, middlewares...)
}

// Prepend inserts middlewares at the front of the stack's sequence.
// Insertion position only matters as the tie-break among middlewares the
// definition does not order relative to each other.
func (s *Stack) Prepend(middlewares ...any) {
	combined := make([]any, 0, len(middlewares)+len(s.Middlewares))
	combined = append(combined, middlewares...)
	combined = append(combined, s.Middlewares...)
	s.Middlewares = combined
}

// Call runs the stack's middlewares over args and returns the final
// argument list.
//
// Before anything executes, every entry in Middlewares must satisfy the
// Middleware contract (*InvalidMiddlewareError otherwise) and then be
// permitted by the definition (*UnpermittedMiddlewareError otherwise).
// Both checks fail fast with zero side effects.
//
// The validated middlewares are sorted by the definition and invoked one
// at a time. Each middleware receives the previous output as its argument
// list: a returned error aborts the call and propagates as-is, and output
// that cannot be coerced into an argument list aborts the call with
// *InvalidMiddlewareOutputError. Nothing that already ran is rolled back.
//
// ctx is handed to every middleware untouched. The stack itself does not
// observe cancellation between steps.
func (s *Stack) Call(ctx context.Context, args ...any) (Args, error) {
	m := &CallMetrics{
		CallID: s.newID(),
		Start:  time.Now(),
	}

	out, err := s.call(ctx, m, args)

	m.Duration = time.Since(m.Start)
	m.Err = err
	s.collect(m)

	return out, err
}

func (s *Stack) call(ctx context.Context, m *CallMetrics, args []any) (Args, error) {
	middlewares := make([]Middleware, 0, len(s.Middlewares))
	for _, candidate := range s.Middlewares {
		if !ValidMiddleware(candidate) {
			return nil, &InvalidMiddlewareError{Middleware: candidate}
		}
		middlewares = append(middlewares, candidate.(Middleware))
	}
	for _, mw := range middlewares {
		if !s.definition.Permits(mw) {
			return nil, &UnpermittedMiddlewareError{Middleware: mw}
		}
	}

	sorted := s.definition.Sorted(middlewares)
	m.Middlewares = len(sorted)

	current := Args(args)
	for i, mw := range sorted {
		s.logger.Debug("MIDDLEGEM: Running middleware",
			"call_id", m.CallID,
			"middleware", fmt.Sprintf("%T", mw),
			"position", i)

		out, err := s.invoke(ctx, mw, current)
		if err != nil {
			return nil, err
		}
		next, ok := NormalizeOutput(out)
		if !ok {
			return nil, &InvalidMiddlewareOutputError{Middleware: mw, Output: out}
		}
		current = next
		m.Completed++
	}
	return current, nil
}

func (s *Stack) invoke(ctx context.Context, mw Middleware, args Args) (any, error) {
	if s.recover {
		return callRecovered(ctx, mw, args)
	}
	return mw.Call(ctx, args...)
}
