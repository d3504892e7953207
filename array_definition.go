package middlegem

import (
	"reflect"
	"slices"
)

// Resolver orders middlewares that matched the same permitted-type entry.
// It receives the tied middlewares in the order they appeared in the input
// and returns them in execution order. The default resolver returns its
// input unchanged, so ties keep their original relative order.
type Resolver func(tied []Middleware) []Middleware

// TypeMatcher decides whether a middleware counts as one of the permitted
// types. It is the pluggable heart of [ArrayDefinition]: swapping it changes
// the matching policy without touching anything else.
type TypeMatcher func(m Middleware, t reflect.Type) bool

// ExactMatch matches a middleware whose dynamic type is exactly t.
// It is the default TypeMatcher.
func ExactMatch(m Middleware, t reflect.Type) bool {
	return reflect.TypeOf(m) == t
}

// AssignableMatch matches a middleware whose dynamic type is assignable to
// t (Go's is-a relation). Unlike [ExactMatch] it accepts interface entries,
// matching every implementation of the interface:
//
//	def := middlegem.NewArrayDefinition(
//		[]reflect.Type{middlegem.TypeOf[Middleware]()},
//		middlegem.WithTypeMatcher(middlegem.AssignableMatch),
//	)
//	// permits (and groups) every middleware
func AssignableMatch(m Middleware, t reflect.Type) bool {
	if t == nil {
		return false
	}
	return reflect.TypeOf(m).AssignableTo(t)
}

// TypeOf returns the reflect.Type of T. It builds permitted-type entries
// without a value at hand, and unlike reflect.TypeOf it also works for
// interface types:
//
//	middlegem.NewArrayDefinition([]reflect.Type{
//		middlegem.TypeOf[*Multiplier](),
//		middlegem.TypeOf[Parenthesizer](),
//	})
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ArrayDefinition is the reference [Definition]: permitted middlewares are
// enumerated by type, in execution order.
//
// Sorting walks the permitted list and, for each entry, collects every input
// middleware matching it (keeping the order they were given in), hands that
// group to the resolver, and appends the resolver's result. Middlewares
// matching no entry are dropped. A type listed more than once is collected
// once per occurrence, against the full input each time, so duplicate
// entries duplicate their middlewares in the output.
type ArrayDefinition struct {
	permitted []reflect.Type
	resolve   Resolver
	match     TypeMatcher
}

// ArrayDefinitionOption configures an ArrayDefinition.
type ArrayDefinitionOption func(*ArrayDefinition)

// WithResolver replaces the identity tie resolver.
func WithResolver(resolve Resolver) ArrayDefinitionOption {
	return func(d *ArrayDefinition) {
		d.resolve = resolve
	}
}

// WithTypeMatcher replaces the [ExactMatch] type matcher.
func WithTypeMatcher(match TypeMatcher) ArrayDefinitionOption {
	return func(d *ArrayDefinition) {
		d.match = match
	}
}

// NewArrayDefinition creates a definition permitting exactly the given
// types, in the given order. Entries need not be unique, and an empty list
// is valid: it permits nothing and sorts everything to nothing.
func NewArrayDefinition(permitted []reflect.Type, opts ...ArrayDefinitionOption) *ArrayDefinition {
	d := &ArrayDefinition{
		permitted: slices.Clone(permitted),
		resolve:   func(tied []Middleware) []Middleware { return tied },
		match:     ExactMatch,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Permitted returns a copy of the permitted-type list, in order.
func (d *ArrayDefinition) Permitted() []reflect.Type {
	return slices.Clone(d.permitted)
}

// Permits reports whether some permitted entry matches m.
func (d *ArrayDefinition) Permits(m Middleware) bool {
	for _, t := range d.permitted {
		if d.match(m, t) {
			return true
		}
	}
	return false
}

// Sorted returns middlewares grouped by permitted entry, in entry order,
// with each group passed through the resolver.
func (d *ArrayDefinition) Sorted(middlewares []Middleware) []Middleware {
	sorted := make([]Middleware, 0, len(middlewares))
	for _, t := range d.permitted {
		var tied []Middleware
		for _, m := range middlewares {
			if d.match(m, t) {
				tied = append(tied, m)
			}
		}
		if len(tied) == 0 {
			continue
		}
		sorted = append(sorted, d.resolve(tied)...)
	}
	return sorted
}

var _ Definition = (*ArrayDefinition)(nil)
