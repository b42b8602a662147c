package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------- Update ----------
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.search.active {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// title, divider, status and help lines
		const chrome = 4
		vp := msg.Height - chrome
		if vp < 3 {
			vp = 3
		}
		m.session.SetHeight(vp)

	case tea.FocusMsg:
		m.session.SetActive(true)

	case tea.BlurMsg:
		// Blurred sessions snap in-flight animations to their target.
		m.session.SetActive(false)

	case FrameMsg:
		// The engine wrote a new position; re-render only.
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.pending != "" {
		prefix := m.pending
		m.pending = ""
		return m.handlePrefixedKey(prefix, key)
	}

	switch key {
	case "ctrl+c", "q":
		m.ctrl.StopAll()
		m.session.Close()
		return m, tea.Quit
	case "j", "down":
		m.session.MoveCursor(1)
	case "k", "up":
		m.session.MoveCursor(-1)
	case "ctrl+d":
		m.ctrl.HalfPageDown(0)
	case "ctrl+u":
		m.ctrl.HalfPageUp(0)
	case "ctrl+f", "pgdown":
		m.ctrl.PageDown(0)
	case "ctrl+b", "pgup":
		m.ctrl.PageUp(0)
	case "G":
		m.ctrl.ScrollTo(0, m.session.Doc().LineCount())
	case "g", "z":
		m.pending = key
	case "/":
		m.search.active = true
		m.search.input.SetValue("")
		m.search.lines = nil
		m.search.sel = 0
		m.search.input.Focus()
		return m, textinput.Blink
	case "esc":
		m.ctrl.Stop(0)
	}
	return m, nil
}

func (m Model) handlePrefixedKey(prefix, key string) (tea.Model, tea.Cmd) {
	switch prefix {
	case "g":
		if key == "g" {
			m.session.JumpCursor(1)
			m.ctrl.ScrollTo(0, 1)
		}
	case "z":
		switch key {
		case "t":
			m.ctrl.CursorTop(0)
		case "z":
			m.ctrl.CursorCenter(0)
		case "b":
			m.ctrl.CursorBottom(0)
		case "a":
			m.session.ToggleFold()
		case "M":
			m.session.CloseAllFolds()
		case "R":
			m.session.OpenAllFolds()
		}
	}
	return m, nil
}
