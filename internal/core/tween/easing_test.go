package tween

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	cases := []struct {
		name string
		fn   Func
	}{
		{"sine default", Sine(1, 0)},
		{"sine steep", Sine(0.8, 0.1)},
		{"sine biased out", Sine(1, 0.2)},
		{"sine biased in", Sine(0.9, -0.2)},
		{"sine steep clamped", Sine(1.5, 0)},
		{"sine bias clamped", Sine(1, 0.9)},
		{"out slope 1", Out(1)},
		{"out slope 2", Out(2)},
		{"out slope 3", Out(3)},
		{"continuation", ContinuationEase()},
		{"default", DefaultEase()},
	}
	for _, tc := range cases {
		if got := tc.fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s: f(0) = %v, want 0", tc.name, got)
		}
		if got := tc.fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s: f(1) = %v, want 1", tc.name, got)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	fns := map[string]Func{
		"sine(1,0)":    Sine(1, 0),
		"sine(0.8,.1)": Sine(0.8, 0.1),
		"sine(.8,-.1)": Sine(0.8, -0.1),
		"sine(1.5,0)":  Sine(1.5, 0),
		"sine(.9,-.2)": Sine(0.9, -0.2),
		"sine(2,.3)":   Sine(2, 0.3),
		"sine(3,-.9)":  Sine(3, -0.9),
		"out(1)":       Out(1),
		"out(3)":       Out(3),
		"out(5)":       Out(5),
	}
	for name, fn := range fns {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev-1e-9 {
				t.Fatalf("%s not monotonic at t=%v: %v < %v", name, float64(i)/100, v, prev)
			}
			prev = v
		}
	}
}

func TestEasingClampsOutOfRange(t *testing.T) {
	for _, fn := range []Func{Sine(1, 0), Out(3)} {
		if got := fn(-0.5); got != 0 {
			t.Errorf("f(-0.5) = %v, want 0", got)
		}
		if got := fn(1.5); math.Abs(got-1) > 1e-9 {
			t.Errorf("f(1.5) = %v, want 1", got)
		}
	}
}

func TestSineClampsNonMonotoneParams(t *testing.T) {
	// Steepness past the monotone limit clamps back to it, so Sine(1.5, 0)
	// is the same curve as Sine(1, 0). Unclamped it would dip negative on
	// the very first steps and scroll the wrong way.
	fn, want := Sine(1.5, 0), Sine(1, 0)
	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100
		if math.Abs(fn(tt)-want(tt)) > 1e-9 {
			t.Fatalf("Sine(1.5,0)(%v) = %v, want %v", tt, fn(tt), want(tt))
		}
	}
	if got := fn(0.01); got < 0 {
		t.Errorf("f(0.01) = %v, want >= 0", got)
	}

	// An extreme bias clamps to the half-step window and still eases.
	biased := Sine(1, 2)
	if got := biased(0.5); got < 0 || got > 1 {
		t.Errorf("clamped biased curve left [0,1]: f(0.5) = %v", got)
	}
}
