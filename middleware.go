package middlegem

import "context"

// Middleware is a single transformation step over an argument list.
//
// Call receives the current argument list spread as variadic arguments and
// returns the next one. The return value is normalized by [NormalizeOutput]
// before it reaches the next middleware: a slice return is the next argument
// list as-is, any other value becomes a one-element list. Returning a
// non-nil error aborts the chain.
//
// The context is the one given to [Stack.Call], passed through unchanged;
// the stack attaches no deadline or cancellation of its own. Middlewares may
// carry internal state and perform side effects; the stack only ever holds
// references to them.
type Middleware interface {
	Call(ctx context.Context, args ...any) (any, error)
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
//
// Note that every MiddlewareFunc shares one dynamic type, so an
// [ArrayDefinition] using the default matcher cannot tell two of them
// apart. Declare a named type when middlewares must sort independently.
type MiddlewareFunc func(ctx context.Context, args ...any) (any, error)

// Call invokes the function itself.
func (f MiddlewareFunc) Call(ctx context.Context, args ...any) (any, error) {
	return f(ctx, args...)
}

// ValidMiddleware reports whether candidate satisfies the Middleware
// contract. The check is structural: any value whose type implements Call
// qualifies, with no embedding or registration required. Nil candidates and
// typed nil values are invalid.
func ValidMiddleware(candidate any) bool {
	m, ok := candidate.(Middleware)
	return ok && !isNil(m)
}

// Passthrough is a middleware that returns its arguments unchanged. It is
// the no-op transformation, useful as an explicit placeholder and in tests.
type Passthrough struct{}

// Call returns args as the next argument list.
func (Passthrough) Call(_ context.Context, args ...any) (any, error) {
	return Args(args), nil
}

// Verify implementations satisfy Middleware.
var (
	_ Middleware = (MiddlewareFunc)(nil)
	_ Middleware = Passthrough{}
)
