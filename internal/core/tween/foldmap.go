package tween

import "math"

// FoldEdge marks a line as a boundary of a closed fold region. Top points
// from a bottom boundary to its paired top line, Bottom the other way around.
// Zero means unset; content lines are 1-based.
type FoldEdge struct {
	Top    int
	Bottom int
}

// FoldMap is a snapshot of the closed fold boundaries inside a scanned line
// range. It is built once per tween and never mutated afterwards; a
// continuation tween may share it read-only. The map never claims coverage
// outside the scanned range: lines without an entry step one content line per
// visual row.
type FoldMap map[int]FoldEdge

func (m FoldMap) record(top, bottom int) {
	et := m[top]
	et.Bottom = bottom
	m[top] = et
	eb := m[bottom]
	eb.Top = top
	m[bottom] = eb
}

// stepDown advances line by one visual row downward. From a closed fold's top
// boundary the whole region is one row, so the step lands just past it.
func (m FoldMap) stepDown(line int) int {
	if e, ok := m[line]; ok && e.Bottom != 0 {
		return e.Bottom + 1
	}
	return line + 1
}

// stepUp moves line one visual row upward. A landing inside a recorded region
// normalizes to the region's top boundary so the position never sits mid-fold.
func (m FoldMap) stepUp(line int) int {
	if e, ok := m[line]; ok && e.Top != 0 {
		return e.Top - 1
	}
	line--
	if e, ok := m[line]; ok && e.Top != 0 {
		return e.Top
	}
	return line
}

// Delta counts the signed visual-row steps between two content lines. With no
// closed folds in range it equals to - from; every closed region in between
// counts as exactly one row.
func (m FoldMap) Delta(from, to int) int {
	d := 0
	line := from
	if to > from {
		for line < to {
			line = m.stepDown(line)
			d++
		}
	} else {
		for line > to {
			line = m.stepUp(line)
			d--
		}
	}
	return d
}

// Resolve walks delta visual-row steps from line and returns the content line
// reached, clamped to [min, max]. Fractional deltas, produced while
// interpolating, round to the nearest whole step. Resolve never lands inside
// a recorded closed region.
func (m FoldMap) Resolve(line int, delta float64, min, max int) int {
	n := int(math.Round(delta))
	for ; n > 0; n-- {
		line = m.stepDown(line)
	}
	for ; n < 0; n++ {
		line = m.stepUp(line)
	}
	return clampLine(line, min, max)
}

// ScanRange builds a fold map by walking content lines from one line toward
// another, querying the host for closed regions in the direction of travel.
// Recorded regions are jumped over rather than stepped through; regions whose
// near boundary lies outside the scanned span are ignored. from == to yields
// an empty map.
func ScanRange(q FoldQuerier, id ViewID, from, to int) FoldMap {
	fm := FoldMap{}
	line := from
	if to > from {
		for line < to {
			if s, e, ok := q.ClosedFold(id, line); ok && s >= from {
				fm.record(s, e)
				line = e + 1
			} else {
				line++
			}
		}
	} else {
		for line > to {
			if s, e, ok := q.ClosedFold(id, line); ok && e <= from {
				fm.record(s, e)
				line = s - 1
			} else {
				line--
			}
		}
	}
	return fm
}

// ScanDelta builds a fold map like ScanRange, but driven by a budget of
// |delta| visual-row steps instead of an end line. Used when the caller asked
// for a relative scroll amount.
func ScanDelta(q FoldQuerier, id ViewID, from, delta int) FoldMap {
	fm := FoldMap{}
	line := from
	if delta > 0 {
		for i := 0; i < delta; i++ {
			if s, e, ok := q.ClosedFold(id, line); ok && s >= from {
				fm.record(s, e)
				line = e + 1
			} else {
				line++
			}
		}
	} else {
		for i := 0; i > delta; i-- {
			if s, e, ok := q.ClosedFold(id, line); ok && e <= from {
				fm.record(s, e)
				line = s - 1
			} else {
				line--
			}
		}
	}
	return fm
}

func clampLine(line, min, max int) int {
	if line < min {
		return min
	}
	if line > max {
		return max
	}
	return line
}
