package middleware_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jacoblockard99/middlegem"
	"github.com/jacoblockard99/middlegem/middleware"
)

func TestTap(t *testing.T) {
	t.Run("observes arguments and passes them through", func(t *testing.T) {
		var seen middlegem.Args
		tap := middleware.NewTap(func(_ context.Context, args middlegem.Args) {
			seen = args
		})

		out, err := tap.Call(context.Background(), 1, "two")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := middlegem.Args{1, "two"}
		if !reflect.DeepEqual(seen, want) {
			t.Errorf("expected tap to observe %v, got %v", want, seen)
		}
		if !reflect.DeepEqual(out, want) {
			t.Errorf("expected passthrough output %v, got %v", want, out)
		}
	})

	t.Run("nil function still passes arguments through", func(t *testing.T) {
		tap := middleware.NewTap(nil)

		out, err := tap.Call(context.Background(), "only")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, middlegem.Args{"only"}) {
			t.Errorf("expected unchanged arguments, got %v", out)
		}
	})
}

func TestExactArgs(t *testing.T) {
	t.Run("passes with matching count", func(t *testing.T) {
		mw := middleware.NewExactArgs(2)

		out, err := mw.Call(context.Background(), "a", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, middlegem.Args{"a", "b"}) {
			t.Errorf("expected unchanged arguments, got %v", out)
		}
	})

	t.Run("fails with wrong count", func(t *testing.T) {
		mw := middleware.NewExactArgs(2)

		_, err := mw.Call(context.Background(), "a", "b", "c")
		if !errors.Is(err, middleware.ErrArgCount) {
			t.Fatalf("expected ErrArgCount, got %v", err)
		}
		if !strings.Contains(err.Error(), "expected 2, got 3") {
			t.Errorf("expected error to mention both counts, got %v", err)
		}
	})

	t.Run("zero count requires an empty list", func(t *testing.T) {
		mw := middleware.NewExactArgs(0)

		if _, err := mw.Call(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := mw.Call(context.Background(), 1); !errors.Is(err, middleware.ErrArgCount) {
			t.Errorf("expected ErrArgCount, got %v", err)
		}
	})
}

func TestSelect(t *testing.T) {
	t.Run("projects and reorders", func(t *testing.T) {
		mw := middleware.NewSelect(2, 0)

		out, err := mw.Call(context.Background(), "a", "b", "c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, middlegem.Args{"c", "a"}) {
			t.Errorf("expected [c a], got %v", out)
		}
	})

	t.Run("repeats indices", func(t *testing.T) {
		mw := middleware.NewSelect(1, 1)

		out, err := mw.Call(context.Background(), "a", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, middlegem.Args{"b", "b"}) {
			t.Errorf("expected [b b], got %v", out)
		}
	})

	t.Run("fails on out of range index", func(t *testing.T) {
		mw := middleware.NewSelect(3)

		_, err := mw.Call(context.Background(), "a", "b")
		if !errors.Is(err, middleware.ErrIndexRange) {
			t.Fatalf("expected ErrIndexRange, got %v", err)
		}
		if !strings.Contains(err.Error(), "index 3") {
			t.Errorf("expected error to name the index, got %v", err)
		}
	})

	t.Run("fails on negative index", func(t *testing.T) {
		mw := middleware.NewSelect(-1)

		_, err := mw.Call(context.Background(), "a")
		if !errors.Is(err, middleware.ErrIndexRange) {
			t.Errorf("expected ErrIndexRange, got %v", err)
		}
	})

	t.Run("no indices yields an empty list", func(t *testing.T) {
		mw := middleware.NewSelect()

		out, err := mw.Call(context.Background(), "a", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, middlegem.Args{}) {
			t.Errorf("expected empty argument list, got %v", out)
		}
	})
}

func TestAppend(t *testing.T) {
	t.Run("appends values", func(t *testing.T) {
		mw := middleware.NewAppend("x", 9)

		out, err := mw.Call(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, middlegem.Args{1, "x", 9}) {
			t.Errorf("expected [1 x 9], got %v", out)
		}
	})

	t.Run("no values passes arguments through", func(t *testing.T) {
		mw := middleware.NewAppend()

		out, err := mw.Call(context.Background(), "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out, middlegem.Args{"a"}) {
			t.Errorf("expected unchanged arguments, got %v", out)
		}
	})
}
