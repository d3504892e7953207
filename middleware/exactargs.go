package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/jacoblockard99/middlegem"
)

// ErrArgCount is returned when an argument list has the wrong length.
var ErrArgCount = errors.New("wrong argument count")

// ExactArgs fails the call unless the argument list has an exact length.
type ExactArgs struct {
	n int
}

// NewExactArgs creates a middleware that passes the argument list through
// when it holds exactly n values and errors otherwise. Place it before
// middlewares that index into their arguments.
func NewExactArgs(n int) *ExactArgs {
	return &ExactArgs{n: n}
}

func (e *ExactArgs) Call(ctx context.Context, args ...any) (any, error) {
	if len(args) != e.n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrArgCount, e.n, len(args))
	}
	return middlegem.Args(args), nil
}

var _ middlegem.Middleware = (*ExactArgs)(nil)
