package tween

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringConfig tunes the physics-based scroll mode.
type SpringConfig struct {
	Frequency float64 // angular frequency; higher snaps harder
	Damping   float64 // 1 is critically damped, < 1 overshoots
}

// DefaultSpringConfig settles quickly without visible overshoot.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Frequency: 7.0, Damping: 1.0}
}

// SpringTween animates a view with a damped spring instead of a clock and
// easing curve. Distance is still measured in visual rows and resolved
// through a fold map, so closed folds traverse as single rows. Unlike a
// clocked tween, a retarget keeps the current velocity, which is what makes
// rapid repeated scrolls feel continuous.
type SpringTween struct {
	host Host
	id   ViewID

	spring harmonica.Spring
	pos    float64 // visual rows travelled from origTop
	vel    float64
	rows   float64 // target distance in visual rows

	origTop int
	folds   FoldMap
	minLine int
	maxLine int
	margin  int
	height  int

	done bool
}

// NewSpring constructs a spring-driven scroll of rows visual rows. fps is the
// tick rate the owning loop will drive it at.
func NewSpring(h Host, id ViewID, rows int, fps int, cfg SpringConfig) (*SpringTween, error) {
	if rows == 0 {
		return nil, ErrNoTarget
	}
	v, ok := h.View(id)
	if !ok {
		return nil, ErrViewGone
	}
	if fps <= 0 {
		fps = 144
	}
	if cfg.Frequency <= 0 {
		cfg = DefaultSpringConfig()
	}

	height := h.Height(id)
	if height < 1 {
		height = 1
	}
	margin := h.ScrollOff(id)
	if margin < 0 {
		margin = 0
	}
	if margin > height/2 {
		margin = height / 2
	}
	maxLine := h.LineCount(id) - height + 1
	if maxLine < 1 {
		maxLine = 1
	}
	if s, _, ok := h.ClosedFold(id, maxLine); ok && s < maxLine {
		maxLine = s
	}
	maxLine -= margin
	if maxLine < 1 {
		maxLine = 1
	}

	return &SpringTween{
		host:    h,
		id:      id,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), cfg.Frequency, cfg.Damping),
		rows:    float64(rows),
		origTop: v.TopLine,
		folds:   ScanDelta(h, id, v.TopLine, rows),
		minLine: 1,
		maxLine: maxLine,
		margin:  margin,
		height:  height,
	}, nil
}

// Retarget redirects the spring toward a new relative distance, measured from
// the current animated position. Velocity carries over; the fold map is
// rebuilt from the current line since the old scan may not cover the new
// travel window.
func (st *SpringTween) Retarget(rows int) {
	line := st.folds.Resolve(st.origTop, st.pos, st.minLine, st.maxLine)
	st.origTop = line
	st.pos = 0
	st.rows = float64(rows)
	st.folds = ScanDelta(st.host, st.id, line, rows)
}

// Valid reports whether the spring may still animate.
func (st *SpringTween) Valid() bool { return !st.done }

// Invalidate cancels the animation.
func (st *SpringTween) Invalidate() { st.done = true }

// Alive reports whether the spring has settled.
func (st *SpringTween) Alive() bool { return !st.done }

// Update advances the spring by one tick and writes the resolved position.
func (st *SpringTween) Update() Status {
	if st.done {
		return StatusGone
	}
	v, ok := st.host.View(st.id)
	if !ok {
		st.done = true
		return StatusGone
	}
	target := st.folds.Resolve(st.origTop, st.rows, st.minLine, st.maxLine)
	if !st.host.Active(st.id) {
		v.TopLine = target
		st.clampCursor(&v, target)
		_ = st.host.SetView(st.id, v)
		st.done = true
		return StatusDetached
	}

	st.pos, st.vel = st.spring.Update(st.pos, st.vel, st.rows)
	settled := math.Abs(st.rows-st.pos) < 0.5 && math.Abs(st.vel) < 0.5
	if settled {
		st.pos, st.vel = st.rows, 0
	}

	line := st.folds.Resolve(st.origTop, st.pos, st.minLine, st.maxLine)
	v.TopLine = line
	st.clampCursor(&v, line)
	if err := st.host.SetView(st.id, v); err != nil {
		st.done = true
		return StatusGone
	}
	if settled {
		st.done = true
		return StatusArrived
	}
	return StatusContinue
}

func (st *SpringTween) clampCursor(v *View, top int) {
	lc := st.host.LineCount(st.id)
	lo := st.folds.Resolve(top, float64(st.margin), 1, lc)
	if top <= st.margin {
		lo = top
	}
	hi := st.folds.Resolve(top, float64(st.height-st.margin-1), 1, lc)
	if v.CursorLine < lo {
		v.CursorLine = lo
	}
	if v.CursorLine > hi {
		v.CursorLine = hi
	}
}
