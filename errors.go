package middlegem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDefinition indicates a value that fails the Definition
	// contract.
	ErrInvalidDefinition = errors.New("middlegem: invalid definition")
	// ErrInvalidMiddleware indicates a stack entry that fails the
	// Middleware contract.
	ErrInvalidMiddleware = errors.New("middlegem: invalid middleware")
	// ErrUnpermittedMiddleware indicates a middleware rejected by the
	// stack's definition.
	ErrUnpermittedMiddleware = errors.New("middlegem: unpermitted middleware")
	// ErrInvalidMiddlewareOutput indicates a middleware return value that
	// cannot be coerced into an argument list.
	ErrInvalidMiddlewareOutput = errors.New("middlegem: invalid middleware output")
)

// InvalidDefinitionError is returned by NewStack when the definition does
// not satisfy the Definition contract. It unwraps to ErrInvalidDefinition.
type InvalidDefinitionError struct {
	// Definition is the rejected candidate.
	Definition any
}

func (e *InvalidDefinitionError) Error() string {
	return fmt.Sprintf("middlegem: invalid definition: %T does not satisfy the Definition contract", e.Definition)
}

func (e *InvalidDefinitionError) Unwrap() error {
	return ErrInvalidDefinition
}

// InvalidMiddlewareError is returned by Stack.Call when an entry in the
// middleware sequence does not satisfy the Middleware contract. It is
// raised before any middleware runs and unwraps to ErrInvalidMiddleware.
type InvalidMiddlewareError struct {
	// Middleware is the offending entry.
	Middleware any
}

func (e *InvalidMiddlewareError) Error() string {
	return fmt.Sprintf("middlegem: invalid middleware: %T does not satisfy the Middleware contract", e.Middleware)
}

func (e *InvalidMiddlewareError) Unwrap() error {
	return ErrInvalidMiddleware
}

// UnpermittedMiddlewareError is returned by Stack.Call when the definition
// rejects a middleware. It is raised before any middleware runs and unwraps
// to ErrUnpermittedMiddleware.
type UnpermittedMiddlewareError struct {
	// Middleware is the offending middleware.
	Middleware Middleware
}

func (e *UnpermittedMiddlewareError) Error() string {
	return fmt.Sprintf("middlegem: unpermitted middleware: %T is not permitted by the definition", e.Middleware)
}

func (e *UnpermittedMiddlewareError) Unwrap() error {
	return ErrUnpermittedMiddleware
}

// InvalidMiddlewareOutputError is returned by Stack.Call when a middleware
// returns a value that cannot be coerced into an argument list. Middlewares
// earlier in the sorted order have already run by then; their side effects
// stand. It unwraps to ErrInvalidMiddlewareOutput.
type InvalidMiddlewareOutputError struct {
	// Middleware is the offending middleware.
	Middleware Middleware
	// Output is the value it returned.
	Output any
}

func (e *InvalidMiddlewareOutputError) Error() string {
	return fmt.Sprintf("middlegem: invalid middleware output: %T returned a %T value that cannot be treated as an argument list", e.Middleware, e.Output)
}

func (e *InvalidMiddlewareOutputError) Unwrap() error {
	return ErrInvalidMiddlewareOutput
}
