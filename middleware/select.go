package middleware

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jacoblockard99/middlegem"
)

// ErrIndexRange is returned when a selected index falls outside the
// argument list.
var ErrIndexRange = errors.New("index out of range")

// Select projects the argument list onto a fixed set of indices.
type Select struct {
	indices []int
}

// NewSelect creates a middleware that replaces the argument list with the
// values at indices, in the order given. Indices may repeat.
//
// Example:
//
//	// Keep the third and first arguments, in that order.
//	middleware.NewSelect(2, 0)
func NewSelect(indices ...int) *Select {
	return &Select{indices: slices.Clone(indices)}
}

func (s *Select) Call(ctx context.Context, args ...any) (any, error) {
	out := make(middlegem.Args, len(s.indices))
	for i, idx := range s.indices {
		if idx < 0 || idx >= len(args) {
			return nil, fmt.Errorf("%w: index %d with %d arguments", ErrIndexRange, idx, len(args))
		}
		out[i] = args[idx]
	}
	return out, nil
}

var _ middlegem.Middleware = (*Select)(nil)
