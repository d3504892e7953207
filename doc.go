// Package middlegem provides one-way middleware chains whose execution order
// is decided by a definition, not by insertion position.
//
// A middleware is a single transformation over an argument list. A definition
// decides which middlewares are allowed and how they are ordered. A stack
// owns a freely mutable middleware sequence plus one definition, and on each
// call validates the sequence, asks the definition to sort it, and invokes
// the result one middleware at a time, threading each output into the next
// input.
//
// # Quick Start
//
//	def := middlegem.NewArrayDefinition([]reflect.Type{
//		middlegem.TypeOf[*Multiplier](),
//		middlegem.TypeOf[*Parenthesizer](),
//	})
//
//	stack, err := middlegem.NewStack(def)
//	if err != nil {
//		log.Fatal(err)
//	}
//	stack.Use(&Parenthesizer{}, &Multiplier{Factor: 10})
//
//	out, err := stack.Call(ctx, 10)
//	// out is Args{"(100)"}: the multiplier ran first because the
//	// definition says so, regardless of insertion order.
//
// # Ordering
//
// The reference [ArrayDefinition] enumerates permitted middleware types in
// execution order. Middlewares of the same type keep their insertion order
// unless a [Resolver] reorders them, and the type-matching rule itself is a
// pluggable [TypeMatcher]. Custom policies only need to implement
// [Definition].
//
// # Failure model
//
// Structural and permission problems are detected before anything runs, so a
// failed validation has zero side effects. Failures after execution begins
// (a middleware returning an error, a non-list-shaped output, a recovered
// panic) abort the call immediately but never roll back the middlewares
// that already ran.
//
// # Subpackages
//
// middleware: Ready-made argument-list middlewares (Tap, ExactArgs, ...)
//
// observe: Prometheus instrumentation for stack calls
package middlegem
