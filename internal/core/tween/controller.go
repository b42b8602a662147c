package tween

import (
	"sync"
	"time"

	"view-tween/internal/infra/logx"
)

// animation is what the frame loop drives: a clocked tween or a spring.
type animation interface {
	Update() Status
	Valid() bool
	Invalidate()
	Alive() bool
}

// Options configures a Controller.
type Options struct {
	// Duration of a fresh scroll animation. Default 250ms.
	Duration time.Duration
	// Interval caps the frame rate. Default is one frame per 1/144s.
	Interval time.Duration
	// Ease for fresh tweens; ContinuationEase for splices onto in-flight
	// ones. Defaults: Sine(1,0) and Out(3).
	Ease             Func
	ContinuationEase Func
	// LockCursor keeps the cursor on its screen row while scrolling.
	LockCursor bool
	// UseSpring switches relative scrolls to the damped-spring mode.
	UseSpring bool
	Spring    SpringConfig
}

func (o Options) withDefaults() Options {
	if o.Duration <= 0 {
		o.Duration = 250 * time.Millisecond
	}
	if o.Interval <= 0 {
		o.Interval = time.Second / 144
	}
	if o.Ease == nil {
		o.Ease = DefaultEase()
	}
	if o.ContinuationEase == nil {
		o.ContinuationEase = ContinuationEase()
	}
	if o.Spring.Frequency <= 0 {
		o.Spring = DefaultSpringConfig()
	}
	return o
}

// Controller is the per-host entry point. It owns at most one live animation
// per view; a new scroll request invalidates the previous one and splices a
// continuation that takes over from the current position.
type Controller struct {
	mu       sync.Mutex
	host     Host
	opts     Options
	live     map[ViewID]animation
	throttle map[ViewID]*Throttle
}

// NewController creates a controller over the given host.
func NewController(h Host, opts Options) *Controller {
	return &Controller{
		host:     h,
		opts:     opts.withDefaults(),
		live:     make(map[ViewID]animation),
		throttle: make(map[ViewID]*Throttle),
	}
}

// ScrollOption overrides per-request settings.
type ScrollOption func(*scrollConfig)

type scrollConfig struct {
	duration   time.Duration
	lockCursor *bool
}

// WithDuration overrides the animation duration for one request.
func WithDuration(d time.Duration) ScrollOption {
	return func(sc *scrollConfig) { sc.duration = d }
}

// WithLockCursor overrides cursor locking for one request.
func WithLockCursor(lock bool) ScrollOption {
	return func(sc *scrollConfig) { sc.lockCursor = &lock }
}

type request struct {
	rows    int
	hasRows bool
	target  int
	cfg     scrollConfig
}

// Scroll animates the view by a signed number of visual rows. Rapid repeated
// calls within half the default duration coalesce into the last one, so a
// held-down key does not construct a new tween per repeat.
func (c *Controller) Scroll(id ViewID, rows int, opts ...ScrollOption) {
	if rows == 0 {
		return
	}
	id = c.resolve(id)
	req := request{rows: rows, hasRows: true, cfg: c.applyOpts(opts)}
	c.throttleFor(id).Call(func() { c.start(id, req) })
}

// ScrollTo animates the view so the given content line becomes the top line,
// clamped to the valid range.
func (c *Controller) ScrollTo(id ViewID, line int, opts ...ScrollOption) {
	if line <= 0 {
		return
	}
	id = c.resolve(id)
	req := request{target: line, cfg: c.applyOpts(opts)}
	c.throttleFor(id).Call(func() { c.start(id, req) })
}

// Stop cancels the view's animation, leaving it wherever it currently sits.
func (c *Controller) Stop(id ViewID) {
	id = c.resolve(id)
	c.mu.Lock()
	if a, ok := c.live[id]; ok {
		a.Invalidate()
		delete(c.live, id)
	}
	c.mu.Unlock()
}

// StopAll cancels every live animation.
func (c *Controller) StopAll() {
	c.mu.Lock()
	for id, a := range c.live {
		a.Invalidate()
		delete(c.live, id)
	}
	c.mu.Unlock()
}

// Animating reports whether the view has an in-flight animation.
func (c *Controller) Animating(id ViewID) bool {
	id = c.resolve(id)
	c.mu.Lock()
	a, ok := c.live[id]
	valid := ok && a.Valid()
	c.mu.Unlock()
	return valid
}

func (c *Controller) resolve(id ViewID) ViewID {
	if id == 0 {
		return c.host.Current()
	}
	return id
}

func (c *Controller) applyOpts(opts []ScrollOption) scrollConfig {
	sc := scrollConfig{duration: c.opts.Duration}
	for _, o := range opts {
		o(&sc)
	}
	if sc.duration <= 0 {
		sc.duration = c.opts.Duration
	}
	return sc
}

// throttleFor returns the view's request throttle, coalescing bursts within
// half the default duration.
func (c *Controller) throttleFor(id ViewID) *Throttle {
	c.mu.Lock()
	t, ok := c.throttle[id]
	if !ok {
		t = NewThrottle(c.opts.Duration / 2)
		c.throttle[id] = t
	}
	c.mu.Unlock()
	return t
}

// start resolves the request into a live animation, splicing a continuation
// when one is already in flight for the view.
func (c *Controller) start(id ViewID, req request) {
	lock := c.opts.LockCursor
	if req.cfg.lockCursor != nil {
		lock = *req.cfg.lockCursor
	}

	c.mu.Lock()
	prev := c.live[id]

	if c.opts.UseSpring && req.hasRows {
		if sp, ok := prev.(*SpringTween); ok && sp.Valid() {
			// Springs retarget in place, keeping their velocity.
			sp.Retarget(req.rows)
			c.mu.Unlock()
			return
		}
		if prev != nil {
			prev.Invalidate()
		}
		fps := int(time.Second / c.opts.Interval)
		sp, err := NewSpring(c.host, id, req.rows, fps, c.opts.Spring)
		if err != nil {
			delete(c.live, id)
			c.mu.Unlock()
			logx.Debugf("spring scroll rejected for view %d: %v", id, err)
			return
		}
		c.live[id] = sp
		c.mu.Unlock()
		c.run(id, sp)
		return
	}

	p := Params{
		Rows:       req.rows,
		HasRows:    req.hasRows,
		TargetLine: req.target,
		Duration:   req.cfg.duration,
		LockCursor: lock,
		Ease:       c.opts.Ease,
	}
	if prevTween, ok := prev.(*Tween); ok && prevTween.Valid() {
		// Continuation: the new request fully replaces the remaining
		// motion, starting from wherever the view currently sits. The
		// fold map is reused on the assumption folds have not changed
		// mid-flight; the clock is back-dated one tick to compensate
		// for construction latency.
		prevTween.Invalidate()
		p.Folds = prevTween.Folds()
		p.Ease = c.opts.ContinuationEase
		p.Backdate = c.opts.Interval
		logx.Debugf("splicing continuation for view %d (rows=%d)", id, req.rows)
	} else if prev != nil {
		prev.Invalidate()
	}

	tw, err := New(c.host, id, p)
	if err != nil {
		delete(c.live, id)
		c.mu.Unlock()
		logx.Debugf("scroll rejected for view %d: %v", id, err)
		return
	}
	c.live[id] = tw
	c.mu.Unlock()
	c.run(id, tw)
}

// run drives the animation's frame loop. Each tick checks validity before the
// tick body, so an invalidated animation gets at most one more observable
// write (the termination snap performed by Update itself).
func (c *Controller) run(id ViewID, a animation) {
	NewLoop(c.opts.Interval).Start(func() bool {
		c.mu.Lock()
		if c.live[id] != a || !a.Valid() {
			if c.live[id] == a {
				delete(c.live, id)
			}
			c.mu.Unlock()
			return false
		}
		st := a.Update()
		stop := st != StatusContinue || !a.Alive()
		if stop {
			a.Invalidate()
			if c.live[id] == a {
				delete(c.live, id)
			}
			logx.Fields(logx.LevelDebug, "animation finished", map[string]any{
				"view":   int(id),
				"status": int(st),
			})
		}
		c.mu.Unlock()
		return !stop
	})
}
