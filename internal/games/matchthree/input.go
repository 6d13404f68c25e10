package matchthree

import (
	"github.com/vovakirdan/matchthree/internal/board"
	"github.com/vovakirdan/matchthree/internal/core"
)

// handlePointer forwards mouse samples to the board in arrival order.
// A press starts a gesture and moves the cursor along with it.
func (g *Game) handlePointer(events []core.PointerEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case core.PointerPress:
			g.picked = false
			g.board.OnTouch(ev.At)
			if c, ok := g.board.Gesture(); ok {
				g.cursor = c
			}
		case core.PointerDrag:
			g.board.OnDrag(ev.At)
		}
	}
}

// handleKeys drives the keyboard cursor. Picking a piece touches the center
// of its cell; an arrow while picked drags to the neighbor in that direction,
// so keyboard swaps go through the same gesture path as the mouse.
func (g *Game) handleKeys(in core.InputFrame) {
	dx, dy, moved := direction(in)

	switch {
	case in.Has(core.ActionBack):
		g.picked = false

	case in.Has(core.ActionSelect):
		if g.picked {
			g.picked = false
			return
		}
		geom := g.board.Geometry()
		g.board.OnTouch(geom.CellCenter(g.cursor))
		_, g.picked = g.board.Gesture()

	case moved && g.picked:
		g.picked = false
		target := g.cursor.Add(dx, dy)
		if !g.inBounds(target) {
			return
		}
		geom := g.board.Geometry()
		g.board.OnDrag(geom.CellCenter(target))
		g.cursor = target

	case moved:
		target := g.cursor.Add(dx, dy)
		if g.inBounds(target) {
			g.cursor = target
		}
	}
}

func (g *Game) inBounds(c board.Cell) bool {
	n := g.board.Size()
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// direction returns the cursor step of the arrow pressed this tick.
func direction(in core.InputFrame) (dx, dy int, ok bool) {
	switch {
	case in.Has(core.ActionUp):
		return 0, -1, true
	case in.Has(core.ActionDown):
		return 0, 1, true
	case in.Has(core.ActionLeft):
		return -1, 0, true
	case in.Has(core.ActionRight):
		return 1, 0, true
	}
	return 0, 0, false
}
