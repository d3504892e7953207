package middlegem

// Definition decides which middlewares a stack may run, and in what order.
//
// Permits reports whether a single middleware is allowed at all. Sorted
// reorders a set of already-permitted middlewares into execution order; it
// is free to return more or fewer middlewares than it was given (see
// [ArrayDefinition] for the reference policy). A definition carries only the
// configuration it was built with and must not accumulate state between
// calls, since one definition may serve any number of stacks.
type Definition interface {
	Permits(m Middleware) bool
	Sorted(middlewares []Middleware) []Middleware
}

// ValidDefinition reports whether candidate satisfies the Definition
// contract. Only the presence of the two capabilities is checked; neither
// is invoked. Nil candidates and typed nil values are invalid.
func ValidDefinition(candidate any) bool {
	d, ok := candidate.(Definition)
	return ok && !isNil(d)
}

// Unrestricted is the no-op ordering policy: it permits every middleware and
// preserves insertion order, leaving the stack's sequence in full control.
type Unrestricted struct{}

// Permits always reports true.
func (Unrestricted) Permits(Middleware) bool { return true }

// Sorted returns middlewares unchanged.
func (Unrestricted) Sorted(middlewares []Middleware) []Middleware {
	return middlewares
}

var _ Definition = Unrestricted{}
