package tween

import "math"

// Func maps normalized elapsed time t in [0,1] to normalized progression
// in [0,1]. Inputs outside [0,1] clamp to the boundary values.
type Func func(t float64) float64

// Sine returns a sine-based ease. k controls steepness, m shifts the curve
// horizontally: m > 0 biases toward ease-out, m < 0 toward ease-in.
// Sine(1, 0) is the classic sine in-out curve. Parameters are clamped so the
// sine argument stays within [-pi/2, pi/2] over t in [0,1]; outside that
// window the curve would reverse direction mid-animation.
func Sine(k, m float64) Func {
	if k <= 0 {
		k = 1
	}
	if m < -0.5 {
		m = -0.5
	}
	if m > 0.5 {
		m = 0.5
	}
	if limit := 0.5 / (0.5 + math.Abs(m)); k > limit {
		k = limit
	}
	at := func(t float64) float64 {
		return math.Sin(k * math.Pi * (t + m - 0.5))
	}
	lo, hi := at(0), at(1)
	return func(t float64) float64 {
		t = clamp01(t)
		return (at(t) - lo) / (hi - lo)
	}
}

// Out returns a polynomial ease-out with slope k: 1 - (1-t)^k.
// Larger k starts faster and settles harder.
func Out(k float64) Func {
	if k < 1 {
		k = 1
	}
	return func(t float64) float64 {
		t = clamp01(t)
		return 1 - math.Pow(1-t, k)
	}
}

// DefaultEase is the curve used by fresh tweens.
func DefaultEase() Func { return Sine(1, 0) }

// ContinuationEase is the sharper curve used when a tween splices onto an
// in-flight one, which already carries velocity.
func ContinuationEase() Func { return Out(3) }

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
