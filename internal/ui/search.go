package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// maxSearchResults keeps the match list calm on large documents.
const maxSearchResults = 100

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.active = false
		m.search.input.Blur()
		return m, nil
	case "enter":
		m.search.active = false
		m.search.input.Blur()
		if len(m.search.lines) > 0 {
			line := m.search.lines[m.search.sel]
			m.session.JumpCursor(line)
			m.ctrl.CursorCenter(0)
		}
		return m, nil
	case "down", "ctrl+n":
		if len(m.search.lines) > 0 {
			m.search.sel = (m.search.sel + 1) % len(m.search.lines)
		}
		return m, nil
	case "up", "ctrl+p":
		if n := len(m.search.lines); n > 0 {
			m.search.sel = (m.search.sel + n - 1) % n
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.refreshSearch()
	return m, cmd
}

// refreshSearch recomputes fuzzy matches over the document's lines.
func (m *Model) refreshSearch() {
	m.search.sel = 0
	q := strings.TrimSpace(m.search.input.Value())
	if q == "" {
		m.search.lines = nil
		return
	}
	d := m.session.Doc()
	base := make([]string, d.LineCount())
	for i := range base {
		base[i] = d.Line(i + 1)
	}
	matches := fuzzy.Find(q, base)
	lines := make([]int, 0, min(len(matches), maxSearchResults))
	for _, mt := range matches {
		lines = append(lines, mt.Index+1)
		if len(lines) >= maxSearchResults {
			break
		}
	}
	m.search.lines = lines
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
