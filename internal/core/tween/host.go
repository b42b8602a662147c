package tween

// ViewID identifies one scrollable viewport owned by the host. The zero value
// resolves to the host's current view.
type ViewID int

// View is the position record the engine reads from and writes to the host.
// Lines are 1-based.
type View struct {
	TopLine    int
	CursorLine int
	CursorCol  int
	WantCol    int
}

// FoldQuerier reports closed fold regions. ClosedFold returns the outermost
// closed region containing line; nested closed regions are never reported.
type FoldQuerier interface {
	ClosedFold(id ViewID, line int) (top, bottom int, ok bool)
}

// Host is the set of synchronous primitives the engine needs from its
// embedding surface. A view that no longer exists is reported through the
// ok/error returns; the engine treats both as "viewport gone".
type Host interface {
	FoldQuerier

	// View returns the current position of the view, or false if it is gone.
	View(id ViewID) (View, bool)
	// SetView writes the position back. An error terminates the animation.
	SetView(id ViewID, v View) error

	// LineCount is the total number of content lines behind the view.
	LineCount(id ViewID) int
	// Height is the number of visible rows.
	Height(id ViewID) int
	// ScrollOff is the host's margin setting. The engine clamps it to at
	// most half the height.
	ScrollOff(id ViewID) int

	// Active reports whether the view is on the active tab. Inactive views
	// snap to their final position instead of animating off-screen.
	Active(id ViewID) bool
	// Current resolves the active view, used when callers pass ViewID 0.
	Current() ViewID
}
