package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matchthree/internal/core"
)

// MapMouse translates a left-button mouse message to a pointer event.
// Other buttons and plain motion without a held button are ignored.
func MapMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	at := core.Pt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerPress, At: at}, true
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		return core.PointerEvent{Kind: core.PointerDrag, At: at}, true
	case tea.MouseActionRelease:
		return core.PointerEvent{Kind: core.PointerRelease, At: at}, true
	}
	return core.PointerEvent{}, false
}
