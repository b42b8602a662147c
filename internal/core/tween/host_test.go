package tween

import "sync"

type foldRegion struct{ top, bottom int }

// fakeHost is a scripted Host: a flat line buffer with closed fold regions,
// one view, and togglable liveness. Safe for use from loop goroutines.
type fakeHost struct {
	mu        sync.Mutex
	lines     int
	height    int
	scrollOff int
	folds     []foldRegion // closed regions, outermost first
	view      View
	gone      bool
	inactive  bool
	setErr    error
	writes    int
}

func newFakeHost(lines, height, scrollOff int) *fakeHost {
	return &fakeHost{
		lines:     lines,
		height:    height,
		scrollOff: scrollOff,
		view:      View{TopLine: 1, CursorLine: 1, CursorCol: 1, WantCol: 1},
	}
}

func (h *fakeHost) ClosedFold(_ ViewID, line int) (int, int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.folds {
		if r.top <= line && line <= r.bottom {
			return r.top, r.bottom, true
		}
	}
	return 0, 0, false
}

func (h *fakeHost) View(ViewID) (View, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.gone {
		return View{}, false
	}
	return h.view, true
}

func (h *fakeHost) SetView(_ ViewID, v View) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.setErr != nil {
		return h.setErr
	}
	h.view = v
	h.writes++
	return nil
}

func (h *fakeHost) LineCount(ViewID) int { return h.lines }
func (h *fakeHost) Height(ViewID) int    { return h.height }
func (h *fakeHost) ScrollOff(ViewID) int { return h.scrollOff }

func (h *fakeHost) Active(ViewID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.inactive
}

func (h *fakeHost) Current() ViewID { return 1 }

func (h *fakeHost) setInactive(b bool) {
	h.mu.Lock()
	h.inactive = b
	h.mu.Unlock()
}

func (h *fakeHost) currentView() View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view
}
