package middlegem

import (
	"context"
	"fmt"
	"runtime/debug"
)

// RecoveryError wraps a panic value with the stack trace.
// This allows panics to be converted to regular errors and handled gracefully.
type RecoveryError struct {
	// PanicValue is the original value that was passed to panic().
	PanicValue any
	// StackTrace contains the full stack trace at the point of panic.
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("middlegem: panic recovered: %v", e.PanicValue)
}

// WithRecover enables panic recovery around each middleware invocation.
// A panicking middleware fails the call with a *RecoveryError instead of
// unwinding through Call. Middlewares that already ran keep their side
// effects, the same as any other mid-chain failure.
func WithRecover() StackOption {
	return func(cfg *stackConfig) {
		cfg.recover = true
	}
}

func callRecovered(ctx context.Context, m Middleware, args []any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &RecoveryError{
				PanicValue: r,
				StackTrace: string(debug.Stack()),
			}
		}
	}()
	return m.Call(ctx, args...)
}
