package board

import "github.com/vovakirdan/matchthree/internal/core"

// swapTarget is the part of the board the gesture translator drives.
type swapTarget interface {
	Accepting() bool
	ScreenToCell(p core.Point) (Cell, error)
	Swap(a, b Cell) error
}

// GestureTranslator turns touch and drag samples into swap intents.
// Only the first qualifying drag after a touch is honored.
type GestureTranslator struct {
	target        swapTarget
	origin        Cell
	hasOrigin     bool
	dragProcessed bool
}

// NewGestureTranslator creates a translator feeding swaps to target.
func NewGestureTranslator(target swapTarget) *GestureTranslator {
	return &GestureTranslator{target: target}
}

// OnTouch records the cell under p as the origin of a new gesture.
// Touches while the board is busy or off the grid clear the origin.
func (t *GestureTranslator) OnTouch(p core.Point) {
	if !t.target.Accepting() {
		t.hasOrigin = false
		return
	}
	cell, err := t.target.ScreenToCell(p)
	if err != nil {
		t.hasOrigin = false
		return
	}
	t.origin = cell
	t.hasOrigin = true
	t.dragProcessed = false
}

// OnDrag checks whether the pointer has moved onto a neighbor of the origin
// and, if so, requests the swap. It reports whether a swap was started.
func (t *GestureTranslator) OnDrag(p core.Point) bool {
	if !t.target.Accepting() {
		t.dragProcessed = true
		return false
	}
	if !t.hasOrigin || t.dragProcessed {
		return false
	}

	cell, err := t.target.ScreenToCell(p)
	switch {
	case err != nil:
		t.dragProcessed = true
		return false
	case cell == t.origin:
		// Still inside the touched cell.
		return false
	case !t.origin.Adjacent(cell):
		t.dragProcessed = true
		return false
	}

	t.dragProcessed = true
	return t.target.Swap(t.origin, cell) == nil
}

// Origin returns the touched cell of the current gesture, if any.
func (t *GestureTranslator) Origin() (Cell, bool) {
	return t.origin, t.hasOrigin
}

// Pending reports whether a touch is waiting for its drag.
func (t *GestureTranslator) Pending() bool {
	return t.hasOrigin && !t.dragProcessed
}
