package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"view-tween/internal/config"
	"view-tween/internal/core/doc"
	"view-tween/internal/core/tween"
)

// --- UI Styles ---
var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Underline(true)
	subtleStyle     = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	dividerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lineNumStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle     = lipgloss.NewStyle().Bold(true)
	animStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	searchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8942E1")).Bold(true)
	matchStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorLineStyle = lipgloss.NewStyle().Background(lipgloss.Color("#2A2B3D"))
	foldStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AC4BA"))
)

// FrameMsg wakes the program after the engine wrote a new position.
type FrameMsg struct{}

// SearchState holds the fuzzy line search prompt.
type SearchState struct {
	active bool
	input  textinput.Model
	lines  []int // matched content lines, best first
	sel    int
}

// Model is the viewer's Bubble Tea model. The scroll engine runs outside the
// program loop and communicates through the Session.
type Model struct {
	cfg     config.Config
	title   string
	session *Session
	ctrl    *tween.Controller

	width, height int
	pending       string // multi-key prefix: "g" or "z"
	statusMsg     string
	search        SearchState
}

// InitialModel builds the viewer for a document.
func InitialModel(cfg config.Config, title string, d *doc.Document) Model {
	session := NewSession(d, cfg.Scroll.Margin)
	ctrl := tween.NewController(session, engineOptions(cfg))

	si := textinput.New()
	si.Placeholder = "fuzzy search…"
	si.CharLimit = 200
	si.Width = 40

	m := Model{
		cfg:       cfg,
		title:     title,
		session:   session,
		ctrl:      ctrl,
		statusMsg: "j/k move · ctrl+d/u half page · za fold · / search · q quit",
	}
	m.search.input = si

	cursorLineStyle = cursorLineStyle.Background(lipgloss.Color(cfg.UI.CursorColor))
	foldStyle = foldStyle.Foreground(lipgloss.Color(cfg.UI.FoldColor))
	return m
}

// Session exposes the shared state so main can wire the redraw hook.
func (m Model) Session() *Session { return m.session }

// Controller exposes the scroll controller.
func (m Model) Controller() *tween.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd { return nil }

// engineOptions maps the config onto controller options.
func engineOptions(cfg config.Config) tween.Options {
	opts := tween.Options{
		Duration:   time.Duration(cfg.Scroll.DurationMs) * time.Millisecond,
		Interval:   time.Second / time.Duration(cfg.Scroll.FPS),
		LockCursor: cfg.Scroll.LockCursor,
	}
	switch cfg.Scroll.Easing {
	case "ease-out":
		opts.Ease = tween.Out(cfg.Scroll.EaseOutSlope)
	case "spring":
		opts.UseSpring = true
	default:
		opts.Ease = tween.Sine(cfg.Scroll.SineSteepness, cfg.Scroll.SineBias)
	}
	return opts
}
