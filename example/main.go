// Example: Definition-ordered middleware chain formatting a number.
//
// Run: go run ./example
package main

import (
	"context"
	"fmt"
	"log"
	"reflect"

	"github.com/jacoblockard99/middlegem"
)

// Multiplier scales an integer argument.
type Multiplier struct {
	Factor int
}

func (m *Multiplier) Call(_ context.Context, args ...any) (any, error) {
	n, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("multiplier: expected int, got %T", args[0])
	}
	return n * m.Factor, nil
}

// Parentheses wraps its argument in "( )".
type Parentheses struct{}

func (Parentheses) Call(_ context.Context, args ...any) (any, error) {
	return fmt.Sprintf("(%v)", args[0]), nil
}

// Brackets wraps its argument in "[ ]".
type Brackets struct{}

func (Brackets) Call(_ context.Context, args ...any) (any, error) {
	return fmt.Sprintf("[%v]", args[0]), nil
}

// Braces wraps its argument in "{ }".
type Braces struct{}

func (Braces) Call(_ context.Context, args ...any) (any, error) {
	return fmt.Sprintf("{%v}", args[0]), nil
}

func main() {
	// The definition decides execution order: multiply first, then wrap
	// inside-out.
	def := middlegem.NewArrayDefinition([]reflect.Type{
		middlegem.TypeOf[*Multiplier](),
		middlegem.TypeOf[Parentheses](),
		middlegem.TypeOf[Brackets](),
		middlegem.TypeOf[Braces](),
	})

	// Insertion order is deliberately scrambled; it does not matter.
	stack, err := middlegem.NewStack(def, middlegem.WithMiddlewares(
		Brackets{},
		&Multiplier{Factor: 10},
		Braces{},
		Parentheses{},
	))
	if err != nil {
		log.Fatal(err)
	}

	out, err := stack.Call(context.Background(), 10)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out[0]) // {[(100)]}

	// The definition also acts as a gate: middlewares it does not list
	// fail the whole call before anything runs.
	stack.Use(middlegem.Passthrough{})
	if _, err := stack.Call(context.Background(), 10); err != nil {
		fmt.Println(err)
	}
}
