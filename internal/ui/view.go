package ui

import (
	"fmt"
	"strings"
)

// ---------- View ----------
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "initializing…"
	}

	v, height := m.session.Snapshot()
	d := m.session.Doc()
	rows := d.VisibleFrom(v.TopLine, height)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString(subtleStyle.Render(fmt.Sprintf("  %d lines", d.LineCount())))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")

	for _, row := range rows {
		num := lineNumStyle.Render(fmt.Sprintf("%4d ", row.Line))
		text := row.Text
		if row.Folded {
			text = foldStyle.Render(fmt.Sprintf("%s %s  (%d lines)", m.cfg.UI.FoldIcon, strings.TrimSpace(text), row.Span))
		}
		line := num + text
		if row.Line == v.CursorLine {
			line = cursorLineStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := len(rows); i < height; i++ {
		b.WriteString(subtleStyle.Render("~"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine(v.TopLine, v.CursorLine))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.statusMsg))
	return b.String()
}

func (m Model) statusLine(top, cursor int) string {
	if m.search.active {
		prompt := searchStyle.Render("/") + m.search.input.View()
		if n := len(m.search.lines); n > 0 {
			prompt += matchStyle.Render(fmt.Sprintf("  %d/%d", m.search.sel+1, n))
		}
		return prompt
	}
	s := statusStyle.Render(fmt.Sprintf("top %d · cursor %d", top, cursor))
	if m.ctrl.Animating(0) {
		s += animStyle.Render("  ≈")
	}
	return s
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
