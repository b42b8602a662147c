package tween

import (
	"errors"
	"math"
	"time"
)

// ErrNoTarget is returned when a tween is constructed with neither an
// absolute target line nor a row delta. This is a caller contract violation
// and is never silently defaulted.
var ErrNoTarget = errors.New("tween: neither target line nor row delta supplied")

// ErrViewGone is returned when the view disappeared before construction.
var ErrViewGone = errors.New("tween: view no longer exists")

// Status is the outcome of one Update tick.
type Status int

const (
	// StatusContinue means the animation is still in flight.
	StatusContinue Status = iota
	// StatusArrived means the view reached its target position.
	StatusArrived
	// StatusDetached means the view left the active tab; the tween snapped
	// to its final position instead of animating off-screen.
	StatusDetached
	// StatusGone means the view disappeared or rejected the write.
	StatusGone
)

// Params configures a new tween. Exactly one of HasRows or TargetLine must be
// supplied; Folds, Ease and Backdate are set by the controller when splicing
// a continuation onto an in-flight tween.
type Params struct {
	Rows       int  // signed visual-row delta, valid when HasRows
	HasRows    bool
	TargetLine int // absolute content line, > 0 when set
	Duration   time.Duration
	LockCursor bool
	Ease       Func
	Folds      FoldMap       // reuse a previous tween's map when non-nil
	Backdate   time.Duration // shifts the clock start into the past
}

// Tween animates one view's top line (and cursor) toward a target. The shape
// is fixed at construction; Update only advances the progression cursor.
type Tween struct {
	host Host
	id   ViewID

	minLine int
	maxLine int
	origTop int
	origCur int
	rows    int // scroll distance in visual rows, signed
	target  int // resolved target top line

	folds  FoldMap
	clock  *Clock
	margin int
	height int

	lockCursor bool

	// cursor-reanchor sub-protocol, activates at most once per tween
	topped      bool
	reanchored  bool
	reanchorCur int
	coveredRows int
	cursorFinal int

	done bool
}

// New constructs a tween for the given view. The fold map is built here
// unless Params carries one from a superseded tween.
func New(h Host, id ViewID, p Params) (*Tween, error) {
	if !p.HasRows && p.TargetLine <= 0 {
		return nil, ErrNoTarget
	}
	v, ok := h.View(id)
	if !ok {
		return nil, ErrViewGone
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

	tw := &Tween{
		host:       h,
		id:         id,
		minLine:    1,
		origTop:    v.TopLine,
		origCur:    v.CursorLine,
		margin:     margin,
		height:     height,
		lockCursor: p.LockCursor,
	}

	// The last valid top line, pulled out of any closed fold containing it
	// and reduced by the margin so the settled cursor still fits.
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
	tw.maxLine = maxLine

	if p.Folds != nil {
		tw.folds = p.Folds
	} else if p.HasRows {
		tw.folds = ScanDelta(h, id, v.TopLine, p.Rows)
	} else {
		tw.folds = ScanRange(h, id, v.TopLine, clampLine(p.TargetLine, tw.minLine, tw.maxLine))
	}

	if p.HasRows {
		tw.rows = p.Rows
	} else {
		tw.rows = tw.folds.Delta(v.TopLine, clampLine(p.TargetLine, tw.minLine, tw.maxLine))
	}
	tw.target = tw.folds.Resolve(v.TopLine, float64(tw.rows), tw.minLine, tw.maxLine)

	ease := p.Ease
	if ease == nil {
		ease = DefaultEase()
	}
	tw.clock = NewClock(p.Duration, ease)
	if p.Backdate > 0 {
		tw.clock.Backdate(p.Backdate)
	}
	return tw, nil
}

// ViewID returns the view this tween animates.
func (tw *Tween) ViewID() ViewID { return tw.id }

// Target returns the resolved target top line.
func (tw *Tween) Target() int { return tw.target }

// Rows returns the scroll distance in visual rows.
func (tw *Tween) Rows() int { return tw.rows }

// Folds exposes the fold map for reuse by a continuation tween.
func (tw *Tween) Folds() FoldMap { return tw.folds }

// Clock exposes the tween's animation clock.
func (tw *Tween) Clock() *Clock { return tw.clock }

// Valid reports whether the tween may still animate.
func (tw *Tween) Valid() bool { return !tw.done && !tw.clock.Invalidated() }

// Alive reports whether the clock still drives this tween.
func (tw *Tween) Alive() bool { return tw.clock.Alive() }

// Invalidate cancels the tween. Checked before every tick, so at most one
// more write can happen after cancellation.
func (tw *Tween) Invalidate() {
	tw.done = true
	tw.clock.Invalidate()
}

// Update advances the animation by one frame: reads the current position,
// resolves the interpolated top line through the fold map, reconciles the
// cursor, and writes the result back to the host.
func (tw *Tween) Update() Status {
	if tw.done {
		return StatusGone
	}
	v, ok := tw.host.View(tw.id)
	if !ok {
		tw.done = true
		return StatusGone
	}
	if !tw.host.Active(tw.id) {
		// Tab switched away: snap to the final position and stop.
		v.TopLine = tw.target
		tw.clampCursor(&v, tw.target)
		_ = tw.host.SetView(tw.id, v)
		tw.done = true
		return StatusDetached
	}

	p := tw.clock.Progress()
	step := float64(tw.rows) * p
	line := tw.folds.Resolve(tw.origTop, step, tw.minLine, tw.maxLine)

	if !tw.lockCursor && tw.rows < 0 && tw.topped && !tw.reanchored {
		tw.activateReanchor(v)
	}

	switch {
	case tw.reanchored:
		// The top line is pinned at 1; the remaining distance travels
		// through the cursor instead.
		line = tw.minLine
		extra := int(math.Round(step)) - tw.coveredRows
		if extra > 0 {
			extra = 0
		}
		v.CursorLine = tw.folds.Resolve(tw.reanchorCur, float64(extra), 1, tw.host.LineCount(tw.id))
	case tw.lockCursor:
		// The cursor keeps its screen row by travelling the same distance.
		v.CursorLine = tw.folds.Resolve(tw.origCur, step, 1, tw.host.LineCount(tw.id))
	}

	v.TopLine = line
	tw.clampCursor(&v, line)
	if err := tw.host.SetView(tw.id, v); err != nil {
		tw.done = true
		return StatusGone
	}

	if line == tw.minLine && tw.rows < 0 {
		tw.topped = true
	}

	if tw.arrived(line, v.CursorLine) {
		tw.done = true
		return StatusArrived
	}
	return StatusContinue
}

// activateReanchor switches the tween from animating the top line to
// animating the cursor, once the top line can scroll no further.
func (tw *Tween) activateReanchor(v View) {
	tw.reanchored = true
	tw.reanchorCur = v.CursorLine
	tw.coveredRows = tw.folds.Delta(tw.origTop, tw.minLine)
	tw.cursorFinal = tw.folds.Resolve(tw.reanchorCur, float64(tw.rows-tw.coveredRows), 1, tw.host.LineCount(tw.id))
}

func (tw *Tween) arrived(line, cursor int) bool {
	if line != tw.target {
		return false
	}
	if tw.reanchored {
		return cursor == tw.cursorFinal || cursor == 1
	}
	if tw.topped && !tw.lockCursor && tw.rows < 0 {
		// Reached the top this tick; the reanchor sub-protocol decides
		// arrival on the next one.
		return false
	}
	return true
}

// clampCursor keeps the cursor inside the margin-constrained visible band
// around the given top line. The lower clamp is not enforced while the top
// line itself sits inside the margin distance from content start.
func (tw *Tween) clampCursor(v *View, top int) {
	lc := tw.host.LineCount(tw.id)
	lo := tw.folds.Resolve(top, float64(tw.margin), 1, lc)
	if top <= tw.margin {
		lo = top
	}
	hi := tw.folds.Resolve(top, float64(tw.height-tw.margin-1), 1, lc)
	if v.CursorLine < lo {
		v.CursorLine = lo
	}
	if v.CursorLine > hi {
		v.CursorLine = hi
	}
}
