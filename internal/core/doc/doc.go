package doc

import "strings"

// Region is a foldable span of content lines, 1-based and inclusive. The
// header line is part of the region. Regions produced by the indent scanner
// are properly nested and sorted by Top.
type Region struct {
	Top    int
	Bottom int
}

// Document is a line buffer with indentation-derived fold regions and their
// open/closed state. It backs the viewer and provides the closed-region query
// the tween engine consumes.
type Document struct {
	lines   []string
	regions []Region
	closed  map[int]bool // keyed by region top line
}

// New builds a document from lines, scanning fold regions by indentation: a
// line followed by deeper-indented lines folds together with that body.
func New(lines []string) *Document {
	return &Document{
		lines:   lines,
		regions: scanRegions(lines),
		closed:  make(map[int]bool),
	}
}

// FromText splits text into lines and builds a document.
func FromText(text string) *Document {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	return New(lines)
}

// LineCount returns the number of content lines.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the 1-based content line, or "" when out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	return d.lines[n-1]
}

// Regions returns all fold regions in top-line order.
func (d *Document) Regions() []Region { return d.regions }

// Closed reports whether the region with the given top line is closed.
func (d *Document) Closed(top int) bool { return d.closed[top] }

// ClosedFold returns the outermost closed region containing line. Nested
// closed regions inside it are invisible, matching what a folding editor
// reports for a collapsed range.
func (d *Document) ClosedFold(line int) (top, bottom int, ok bool) {
	for _, r := range d.regions {
		if d.closed[r.Top] && r.Top <= line && line <= r.Bottom {
			return r.Top, r.Bottom, true
		}
	}
	return 0, 0, false
}

// ToggleAt opens the outermost closed region containing line, or, when none
// is closed, closes the innermost region containing line.
func (d *Document) ToggleAt(line int) {
	if top, _, ok := d.ClosedFold(line); ok {
		d.closed[top] = false
		return
	}
	var innermost *Region
	for i, r := range d.regions {
		if r.Top <= line && line <= r.Bottom {
			if innermost == nil || r.Top >= innermost.Top {
				innermost = &d.regions[i]
			}
		}
	}
	if innermost != nil {
		d.closed[innermost.Top] = true
	}
}

// CloseAll closes every fold region.
func (d *Document) CloseAll() {
	for _, r := range d.regions {
		d.closed[r.Top] = true
	}
}

// OpenAll opens every fold region.
func (d *Document) OpenAll() {
	clear(d.closed)
}

// Down moves line one visual row down, jumping over a closed fold, clamped to
// the last line.
func (d *Document) Down(line int) int {
	if _, bottom, ok := d.ClosedFold(line); ok {
		line = bottom
	}
	line++
	if line > len(d.lines) {
		return len(d.lines)
	}
	if top, _, ok := d.ClosedFold(line); ok {
		return top
	}
	return line
}

// Up moves line one visual row up, jumping over a closed fold, clamped to
// line 1.
func (d *Document) Up(line int) int {
	if top, _, ok := d.ClosedFold(line); ok {
		line = top
	}
	line--
	if line < 1 {
		return 1
	}
	if top, _, ok := d.ClosedFold(line); ok {
		return top
	}
	return line
}

// Row is one rendered viewport row.
type Row struct {
	Line   int    // content line the row starts at
	Text   string
	Folded bool // row stands in for a closed region
	Span   int  // content lines the row covers (1 unless folded)
}

// VisibleFrom returns up to count rows starting at the given top line, with
// each closed region collapsed to a single placeholder row.
func (d *Document) VisibleFrom(top, count int) []Row {
	rows := make([]Row, 0, count)
	line := top
	if t, _, ok := d.ClosedFold(line); ok {
		line = t
	}
	for len(rows) < count && line <= len(d.lines) {
		if t, b, ok := d.ClosedFold(line); ok {
			rows = append(rows, Row{Line: t, Text: d.Line(t), Folded: true, Span: b - t + 1})
			line = b + 1
			continue
		}
		rows = append(rows, Row{Line: line, Text: d.Line(line), Span: 1})
		line++
	}
	return rows
}

func scanRegions(lines []string) []Region {
	indents := make([]int, len(lines))
	for i, l := range lines {
		indents[i] = indentOf(l)
	}
	var regs []Region
	for i := range lines {
		base := indents[i]
		if base < 0 {
			continue
		}
		end := -1
		for j := i + 1; j < len(lines); j++ {
			if indents[j] < 0 {
				continue // blank lines belong to the surrounding region
			}
			if indents[j] <= base {
				break
			}
			end = j
		}
		if end > i {
			regs = append(regs, Region{Top: i + 1, Bottom: end + 1})
		}
	}
	return regs
}

// indentOf counts leading spaces (tabs count as 4). Blank lines return -1.
func indentOf(line string) int {
	n := 0
	for _, r := range line {
		switch r {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return -1
}
