package tween

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestThrottleLeadingCallRunsImmediately(t *testing.T) {
	th := NewThrottle(time.Hour)
	defer th.Stop()

	var ran atomic.Int32
	th.Call(func() { ran.Add(1) })
	if got := ran.Load(); got != 1 {
		t.Fatalf("leading call ran %d times, want 1", got)
	}
}

func TestThrottleCoalescesBurstIntoTrailingCall(t *testing.T) {
	th := NewThrottle(20 * time.Millisecond)
	defer th.Stop()

	var mu sync.Mutex
	var order []int
	record := func(n int) func() {
		return func() {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
		}
	}

	th.Call(record(1)) // leading, immediate
	th.Call(record(2)) // coalesced away
	th.Call(record(3)) // trailing, fires after the interval

	deadline := time.After(time.Second)
	for {
		mu.Lock()
		n := len(order)
		mu.Unlock()
		if n >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("trailing call never fired")
		case <-time.After(time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Fatalf("calls = %v, want [1 3]", order)
	}
}

func TestThrottleStopCancelsPending(t *testing.T) {
	th := NewThrottle(10 * time.Millisecond)

	var ran atomic.Int32
	th.Call(func() { ran.Add(1) })
	th.Call(func() { ran.Add(1) }) // pending
	th.Stop()
	th.Call(func() { ran.Add(1) }) // ignored after Stop

	time.Sleep(30 * time.Millisecond)
	if got := ran.Load(); got != 1 {
		t.Fatalf("ran %d times, want 1", got)
	}
}

func TestLoopRunsUntilStepFinishes(t *testing.T) {
	l := NewLoop(time.Millisecond)
	done := make(chan struct{})

	var n atomic.Int32
	l.Start(func() bool {
		if n.Add(1) >= 5 {
			close(done)
			return false
		}
		return true
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop never finished")
	}
	time.Sleep(10 * time.Millisecond)
	if got := n.Load(); got != 5 {
		t.Fatalf("step ran %d times, want 5", got)
	}
}

func TestLoopFirstStepIsSynchronous(t *testing.T) {
	l := NewLoop(time.Hour)
	defer l.Stop()

	ran := false
	l.Start(func() bool {
		ran = true
		return true
	})
	if !ran {
		t.Fatal("first step did not run synchronously")
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	l := NewLoop(time.Millisecond)

	var n atomic.Int32
	l.Start(func() bool {
		n.Add(1)
		return true
	})
	l.Stop()
	l.Stop()

	before := n.Load()
	time.Sleep(20 * time.Millisecond)
	if got := n.Load(); got != before {
		t.Fatalf("step kept running after Stop: %d -> %d", before, got)
	}
}
