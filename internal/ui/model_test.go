package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"view-tween/internal/config"
	"view-tween/internal/core/doc"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		mm, _ := m.Update(key(k))
		m = mm.(Model)
	}
	return m
}

func searchableModel() Model {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "filler text"
	}
	lines[29] = "the needle line" // content line 30
	d := doc.FromText(strings.Join(lines, "\n"))

	m := InitialModel(config.Default(), "test", d)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return mm.(Model)
}

func TestCursorKeysMoveSession(t *testing.T) {
	m := searchableModel()
	m = press(t, m, "j", "j", "k")
	if v, _ := m.Session().Snapshot(); v.CursorLine != 2 {
		t.Fatalf("cursor = %d, want 2", v.CursorLine)
	}
}

func TestFoldTogglePrefix(t *testing.T) {
	d := doc.FromText("header\n    body one\n    body two\nafter")
	m := InitialModel(config.Default(), "test", d)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = mm.(Model)

	m = press(t, m, "z", "a")
	if _, _, ok := m.Session().Doc().ClosedFold(2); !ok {
		t.Fatal("za should close the fold at the cursor")
	}
	m = press(t, m, "z", "a")
	if _, _, ok := m.Session().Doc().ClosedFold(2); ok {
		t.Fatal("za again should reopen it")
	}
}

func TestSearchJumpsToMatch(t *testing.T) {
	m := searchableModel()

	m = press(t, m, "/")
	if !m.search.active {
		t.Fatal("slash should open the search prompt")
	}
	m = press(t, m, "n", "e", "e", "d", "l", "e")
	if len(m.search.lines) == 0 || m.search.lines[0] != 30 {
		t.Fatalf("matches = %v, want line 30 first", m.search.lines)
	}

	m = press(t, m, "enter")
	if m.search.active {
		t.Fatal("enter should close the search prompt")
	}
	if v, _ := m.Session().Snapshot(); v.CursorLine != 30 {
		t.Fatalf("cursor = %d, want the matched line 30", v.CursorLine)
	}
	m.Controller().StopAll()
}

func TestSearchEscapeCancels(t *testing.T) {
	m := searchableModel()
	m = press(t, m, "/", "n", "e", "esc")
	if m.search.active {
		t.Fatal("esc should close the search prompt")
	}
	if v, _ := m.Session().Snapshot(); v.CursorLine != 1 {
		t.Fatalf("cursor = %d, want unchanged 1", v.CursorLine)
	}
}
