package tween

// Convenience actions compute a visual-row delta from the view's current
// geometry and feed it through Scroll, so they get the same fold handling,
// throttling and continuation behavior as raw scroll requests.

// HalfPageDown scrolls down half the view height.
func (c *Controller) HalfPageDown(id ViewID) {
	id = c.resolve(id)
	c.Scroll(id, c.host.Height(id)/2)
}

// HalfPageUp scrolls up half the view height.
func (c *Controller) HalfPageUp(id ViewID) {
	id = c.resolve(id)
	c.Scroll(id, -c.host.Height(id)/2)
}

// PageDown scrolls down a full view height.
func (c *Controller) PageDown(id ViewID) {
	id = c.resolve(id)
	c.Scroll(id, c.host.Height(id))
}

// PageUp scrolls up a full view height.
func (c *Controller) PageUp(id ViewID) {
	id = c.resolve(id)
	c.Scroll(id, -c.host.Height(id))
}

// CursorTop scrolls so the cursor line sits at the top of the view, margin
// permitting.
func (c *Controller) CursorTop(id ViewID) {
	id = c.resolve(id)
	rows, ok := c.cursorRows(id)
	if !ok {
		return
	}
	c.Scroll(id, rows-c.margin(id))
}

// CursorCenter scrolls so the cursor line sits in the middle of the view.
func (c *Controller) CursorCenter(id ViewID) {
	id = c.resolve(id)
	rows, ok := c.cursorRows(id)
	if !ok {
		return
	}
	c.Scroll(id, rows-c.host.Height(id)/2)
}

// CursorBottom scrolls so the cursor line sits at the bottom of the view,
// margin permitting.
func (c *Controller) CursorBottom(id ViewID) {
	id = c.resolve(id)
	rows, ok := c.cursorRows(id)
	if !ok {
		return
	}
	c.Scroll(id, rows-(c.host.Height(id)-1-c.margin(id)))
}

// cursorRows returns the visual-row distance from the top line to the cursor.
func (c *Controller) cursorRows(id ViewID) (int, bool) {
	v, ok := c.host.View(id)
	if !ok {
		return 0, false
	}
	fm := ScanRange(c.host, id, v.TopLine, v.CursorLine)
	return fm.Delta(v.TopLine, v.CursorLine), true
}

func (c *Controller) margin(id ViewID) int {
	m := c.host.ScrollOff(id)
	h := c.host.Height(id)
	if m < 0 {
		m = 0
	}
	if m > h/2 {
		m = h / 2
	}
	return m
}
