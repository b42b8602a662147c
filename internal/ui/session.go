package ui

import (
	"errors"
	"sync"

	"view-tween/internal/core/doc"
	"view-tween/internal/core/tween"
)

// ErrSessionClosed is returned when the engine writes to a closed session.
var ErrSessionClosed = errors.New("ui: session closed")

// Session owns the document and the view position shared between the Bubble
// Tea model and the tween engine's frame loop. The loop runs off the program
// goroutine, so all access goes through the mutex; after every engine write
// the notify hook nudges the program to redraw.
type Session struct {
	mu     sync.Mutex
	doc    *doc.Document
	view   tween.View
	height int
	margin int
	active bool
	closed bool
	notify func()
}

// NewSession wraps a document with an initial position on line 1.
func NewSession(d *doc.Document, margin int) *Session {
	return &Session{
		doc:    d,
		view:   tween.View{TopLine: 1, CursorLine: 1, CursorCol: 1, WantCol: 1},
		height: 24,
		margin: margin,
		active: true,
	}
}

// SetNotify wires the redraw hook, called after every engine write.
func (s *Session) SetNotify(fn func()) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// SetHeight updates the visible row count on resize.
func (s *Session) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	s.mu.Lock()
	s.view = clampView(s.doc, s.view, h)
	s.height = h
	s.mu.Unlock()
}

// SetActive marks the session focused or blurred. In-flight animations snap
// to their target when the session goes inactive.
func (s *Session) SetActive(active bool) {
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()
}

// Close makes all further engine writes fail, terminating any animation.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Doc returns the underlying document. The document is only mutated from the
// program goroutine (fold toggles), never from the engine loop.
func (s *Session) Doc() *doc.Document { return s.doc }

// Snapshot returns the current position and height for rendering.
func (s *Session) Snapshot() (tween.View, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view, s.height
}

// MoveCursor moves the cursor delta visual rows without animating, pulling
// the top line along so the cursor stays inside the margin band.
func (s *Session) MoveCursor(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.view.CursorLine
	for ; delta > 0; delta-- {
		cur = s.doc.Down(cur)
	}
	for ; delta < 0; delta++ {
		cur = s.doc.Up(cur)
	}
	s.view.CursorLine = cur
	s.view = clampView(s.doc, s.view, s.height)
}

// JumpCursor places the cursor on a content line without animating. The
// caller typically follows up with an animated centering scroll.
func (s *Session) JumpCursor(line int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if line < 1 {
		line = 1
	}
	if lc := s.doc.LineCount(); line > lc {
		line = lc
	}
	if top, _, ok := s.doc.ClosedFold(line); ok {
		line = top
	}
	s.view.CursorLine = line
}

// ToggleFold toggles the fold at the cursor.
func (s *Session) ToggleFold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.ToggleAt(s.view.CursorLine)
	s.view = clampView(s.doc, s.view, s.height)
}

// CloseAllFolds closes every region, keeping the view position consistent.
func (s *Session) CloseAllFolds() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.CloseAll()
	s.view = clampView(s.doc, s.view, s.height)
}

// OpenAllFolds opens every region.
func (s *Session) OpenAllFolds() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.OpenAll()
}

// --- tween.Host ---

// View returns the current position. The session backs a single view.
func (s *Session) View(tween.ViewID) (tween.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return tween.View{}, false
	}
	return s.view, true
}

// SetView writes a position computed by the engine and wakes the program.
func (s *Session) SetView(_ tween.ViewID, v tween.View) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.view = v
	notify := s.notify
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
	return nil
}

// LineCount returns the document's content line count.
func (s *Session) LineCount(tween.ViewID) int { return s.doc.LineCount() }

// Height returns the visible row count.
func (s *Session) Height(tween.ViewID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

// ScrollOff returns the configured cursor margin.
func (s *Session) ScrollOff(tween.ViewID) int { return s.margin }

// ClosedFold reports the outermost closed fold containing line.
func (s *Session) ClosedFold(_ tween.ViewID, line int) (int, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.ClosedFold(line)
}

// Active reports whether the terminal has focus.
func (s *Session) Active(tween.ViewID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && !s.closed
}

// Current returns the session's single view id.
func (s *Session) Current() tween.ViewID { return 1 }

// clampView keeps the cursor out of closed folds, inside the content, and
// pulls the top line so the cursor stays visible. Used for non-animated
// moves; the engine does its own reconciliation during animations.
func clampView(d *doc.Document, v tween.View, height int) tween.View {
	lc := d.LineCount()
	if v.CursorLine < 1 {
		v.CursorLine = 1
	}
	if v.CursorLine > lc {
		v.CursorLine = lc
	}
	if top, _, ok := d.ClosedFold(v.CursorLine); ok {
		v.CursorLine = top
	}
	if v.TopLine < 1 {
		v.TopLine = 1
	}
	if top, _, ok := d.ClosedFold(v.TopLine); ok {
		v.TopLine = top
	}
	// Pull the top line until the cursor is inside the window.
	for v.CursorLine < v.TopLine {
		v.TopLine = d.Up(v.TopLine)
	}
	for rowsBetween(d, v.TopLine, v.CursorLine) >= height {
		v.TopLine = d.Down(v.TopLine)
	}
	return v
}

// rowsBetween counts visual rows from top to line, both outside closed folds.
func rowsBetween(d *doc.Document, top, line int) int {
	rows := 0
	l := top
	for l < line {
		next := d.Down(l)
		if next == l {
			break
		}
		l = next
		rows++
	}
	return rows
}
