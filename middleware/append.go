package middleware

import (
	"context"
	"slices"

	"github.com/jacoblockard99/middlegem"
)

// Append adds fixed values to the end of the argument list.
type Append struct {
	values []any
}

// NewAppend creates a middleware that appends values to whatever argument
// list it receives. Handy for injecting constants into a chain.
func NewAppend(values ...any) *Append {
	return &Append{values: slices.Clone(values)}
}

func (a *Append) Call(ctx context.Context, args ...any) (any, error) {
	out := make(middlegem.Args, 0, len(args)+len(a.values))
	out = append(out, args...)
	out = append(out, a.values...)
	return out, nil
}

var _ middlegem.Middleware = (*Append)(nil)
