package matchthree

import (
	"fmt"

	"github.com/vovakirdan/matchthree/internal/board"
	"github.com/vovakirdan/matchthree/internal/core"
)

// pieceStyle is how one variant looks on screen.
type pieceStyle struct {
	glyph rune
	color core.Color
}

var pieceStyles = [board.VariantCount]pieceStyle{
	board.Lemon:      {'◆', core.ColorYellow},
	board.Apple:      {'●', core.ColorRed},
	board.Fig:        {'▲', core.ColorPurple},
	board.Strawberry: {'♥', core.ColorBrightRed},
	board.Carrot:     {'▼', core.ColorOrange},
	board.Grape:      {'♣', core.ColorMagenta},
}

// blinkGlyph replaces the top row of a piece while its eyes are shut.
const blinkGlyph = '─'

// explodeGlyphs are cycled through by the explosion frames.
var explodeGlyphs = []rune{'✶', '✷', '+', '·', '.'}

// screenRenderer draws board pieces into a screen buffer, clipped to the
// playable area so spawned pieces stay hidden until they enter the grid.
type screenRenderer struct {
	dst  *core.Screen
	clip core.Rect
}

// DrawPiece implements board.Renderer.
func (r screenRenderer) DrawPiece(v board.PieceView) {
	at := v.Pos.Round()
	rect := core.NewRect(at.X, at.Y, v.Size.X, v.Size.Y)

	if v.State == board.Exploding {
		glyph := explodeGlyphs[v.Frame%len(explodeGlyphs)]
		color := core.ColorGray
		if v.Frame%2 == 1 {
			color = core.ColorDarkGray
		}
		r.dst.FillRect(rect, r.clip, glyph, color)
		return
	}

	style := pieceStyles[int(v.Variant)%len(pieceStyles)]
	r.dst.FillRect(rect, r.clip, style.glyph, style.color)
	if v.Anim == board.AnimBlink {
		eyes := core.NewRect(rect.X, rect.Y, rect.W, 1)
		r.dst.FillRect(eyes, r.clip, blinkGlyph, style.color)
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		if g.boardErr != nil {
			dst.DrawTextCentered(g.screenH/2, g.boardErr.Error())
		}
		return
	}

	geom := g.board.Geometry()
	g.renderHUD(dst, geom.Bounds())
	dst.DrawBox(geom.Bounds(), core.ColorGray)

	g.board.Draw(screenRenderer{dst: dst, clip: geom.PlayArea()})
	g.renderCursor(dst, geom)

	if g.paused {
		g.renderPaused(dst, geom.Bounds())
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	size := g.cfg.BoardGeometry().Size
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", size.X, size.Y+hudHeight, g.screenW, g.screenH))
}

// renderHUD draws title, counters and the board phase above the frame.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCentered(0, g.Title())

	stats := g.board.Stats()
	left := fmt.Sprintf("Swaps %d  Cleared %d", stats.Swaps, stats.Cleared)
	dst.DrawText(frame.X, 1, left)

	phase := g.board.Phase().String()
	x := frame.Right() - len(phase)
	if x < frame.X+len(left)+1 {
		return
	}
	color := core.ColorGreen
	if !g.board.Accepting() {
		color = core.ColorGray
	}
	dst.DrawTextColor(x, 1, phase, color)
}

// renderCursor brackets the keyboard cursor. The brackets sit in the cell
// padding, or on the piece edge when there is none.
func (g *Game) renderCursor(dst *core.Screen, geom board.Geometry) {
	cellSize := geom.CellSize()
	area := geom.PlayArea()

	mark := func(c board.Cell, left, right rune, color core.Color) {
		x := area.X + c.X*cellSize.X
		y := area.Y + c.Y*cellSize.Y + cellSize.Y/2
		dst.SetColor(x, y, left, color)
		dst.SetColor(x+cellSize.X-1, y, right, color)
	}

	if origin, ok := g.board.Gesture(); ok && !g.picked {
		mark(origin, '‹', '›', core.ColorCyan)
	}
	if g.picked {
		mark(g.cursor, '[', ']', core.ColorBrightYellow)
	} else {
		mark(g.cursor, '[', ']', core.ColorWhite)
	}
}

// renderPaused overlays a pause banner in the middle of the frame.
func (g *Game) renderPaused(dst *core.Screen, frame core.Rect) {
	msg := " PAUSED "
	c := frame.Center()
	dst.DrawTextColor(c.X-len(msg)/2, c.Y, msg, core.ColorBrightYellow)
}
