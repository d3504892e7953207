// Package middleware provides ready-made middlewares for common argument
// list manipulations.
package middleware

import (
	"context"

	"github.com/jacoblockard99/middlegem"
)

// Tap observes the argument list without changing it.
type Tap struct {
	fn func(ctx context.Context, args middlegem.Args)
}

// NewTap creates a middleware that calls fn with the current argument list
// and passes the list through unchanged. Useful for debugging a chain or
// recording side effects at a definition-controlled position.
func NewTap(fn func(ctx context.Context, args middlegem.Args)) *Tap {
	return &Tap{fn: fn}
}

func (t *Tap) Call(ctx context.Context, args ...any) (any, error) {
	if t.fn != nil {
		t.fn(ctx, middlegem.Args(args))
	}
	return middlegem.Args(args), nil
}

var _ middlegem.Middleware = (*Tap)(nil)
