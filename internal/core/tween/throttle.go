package tween

import (
	"sync"
	"time"
)

// Throttle rate-limits invocations to at most one per interval with
// leading-edge-immediate, trailing-edge-guaranteed semantics: the first call
// in a burst runs right away, and the last call of a burst is guaranteed to
// run once the interval elapses. Intermediate calls are coalesced into the
// most recent one.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	timer    *time.Timer
	pending  func()
	stopped  bool
}

// NewThrottle creates a throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Throttle{interval: interval}
}

// Call runs fn immediately if the interval has passed since the last run,
// otherwise stores it as the trailing call, replacing any earlier pending fn.
func (t *Throttle) Call(fn func()) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	now := time.Now()
	if t.timer == nil && now.Sub(t.last) >= t.interval {
		t.last = now
		t.mu.Unlock()
		fn()
		return
	}
	t.pending = fn
	if t.timer == nil {
		delay := t.interval - now.Sub(t.last)
		if delay < 0 {
			delay = 0
		}
		t.timer = time.AfterFunc(delay, t.fire)
	}
	t.mu.Unlock()
}

func (t *Throttle) fire() {
	t.mu.Lock()
	fn := t.pending
	t.pending = nil
	t.timer = nil
	t.last = time.Now()
	stopped := t.stopped
	t.mu.Unlock()
	if fn != nil && !stopped {
		fn()
	}
}

// Stop cancels any pending trailing call. Further Calls are ignored.
func (t *Throttle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = nil
	t.mu.Unlock()
}

// Loop drives a step function at a capped rate until the step reports it is
// finished. The first step runs synchronously on Start; subsequent steps run
// on a timer, one at a time, never overlapping. Stop cancels the chain and is
// safe to call more than once.
type Loop struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	step     func() bool
	stopped  bool
}

// NewLoop creates a loop ticking at most once per interval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second / 144
	}
	return &Loop{interval: interval}
}

// Start begins driving step. A false return stops the loop.
func (l *Loop) Start(step func() bool) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.step = step
	l.mu.Unlock()
	l.tick()
}

func (l *Loop) tick() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	step := l.step
	l.mu.Unlock()

	if step == nil || !step() {
		l.Stop()
		return
	}

	l.mu.Lock()
	if !l.stopped {
		l.timer = time.AfterFunc(l.interval, l.tick)
	}
	l.mu.Unlock()
}

// Stop ends the loop. Idempotent.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.mu.Unlock()
}
