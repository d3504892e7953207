package middlegem

import "reflect"

// Args is an ordered argument list passed between chained middlewares.
// Elements are opaque to the stack; any mix of types is allowed.
type Args []any

// NormalizeOutput coerces a middleware's return value into an argument list.
//
// Slices and arrays of any element type are argument lists already and are
// returned element for element. Every other non-nil value is promoted to a
// one-element list. A nil output is the one thing that cannot be coerced and
// reports false: a middleware with nothing to pass on must return an empty
// list, not nil.
func NormalizeOutput(output any) (Args, bool) {
	switch out := output.(type) {
	case nil:
		return nil, false
	case Args:
		return out, true
	case []any:
		return Args(out), true
	}

	v := reflect.ValueOf(output)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		args := make(Args, v.Len())
		for i := range args {
			args[i] = v.Index(i).Interface()
		}
		return args, true
	}

	return Args{output}, true
}

// isNil reports whether v is nil or a typed nil wrapped in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
