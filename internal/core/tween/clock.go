package tween

import "time"

// Clock converts wall-clock time into eased animation progression.
// Once invalidated it reports not-alive forever, regardless of time.
type Clock struct {
	start    time.Time
	duration time.Duration
	ease     Func
	invalid  bool
	now      func() time.Time
}

// NewClock creates a clock starting now. A non-positive duration is raised to
// one millisecond so progression is always well defined.
func NewClock(duration time.Duration, ease Func) *Clock {
	if duration <= 0 {
		duration = time.Millisecond
	}
	if ease == nil {
		ease = DefaultEase()
	}
	c := &Clock{duration: duration, ease: ease, now: time.Now}
	c.start = c.now()
	return c
}

// T returns the raw, unclamped time ratio since start. Values >= 1 mean the
// clock has run out.
func (c *Clock) T() float64 {
	return float64(c.now().Sub(c.start)) / float64(c.duration)
}

// Progress returns the eased progression, clamped to [0,1].
func (c *Clock) Progress() float64 {
	return c.ease(clamp01(c.T()))
}

// Alive reports whether the clock is still driving an animation.
func (c *Clock) Alive() bool {
	return !c.invalid && c.T() < 1
}

// Invalidate permanently kills the clock.
func (c *Clock) Invalidate() { c.invalid = true }

// Invalidated reports whether Invalidate was called.
func (c *Clock) Invalidated() bool { return c.invalid }

// Backdate moves the start time d into the past, compensating for
// construction latency when a continuation tween takes over mid-flight.
func (c *Clock) Backdate(d time.Duration) {
	c.start = c.start.Add(-d)
}
