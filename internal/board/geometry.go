package board

import (
	"fmt"

	"github.com/vovakirdan/matchthree/internal/core"
)

// Geometry places the board on screen. It is computed once when a board is
// built and never changes afterwards; pieces hold a pointer to it.
//
// The playable area is the board minus Margin on every side, split into
// Cells×Cells equal cells. Padding is kept free around the piece inside each
// cell; it shrinks the drawn piece but not the touch area of the cell.
type Geometry struct {
	Cells   int        // Cells per row and column
	Size    core.Point // Board size in pixels
	Offset  core.Point // Top-left corner of the board on screen
	Margin  core.Point // Frame around the playable area
	Padding core.Point // Space around a piece inside its cell
}

// GeometryFor builds a geometry whose cells are exactly cell pixels large.
func GeometryFor(cells int, cell, margin, padding core.Point) Geometry {
	return Geometry{
		Cells:   cells,
		Size:    core.Pt(cell.X*cells+2*margin.X, cell.Y*cells+2*margin.Y),
		Margin:  margin,
		Padding: padding,
	}
}

// At returns a copy of the geometry moved to the given screen offset.
func (g Geometry) At(offset core.Point) Geometry {
	g.Offset = offset
	return g
}

// Validate checks that every cell has room for a piece.
func (g Geometry) Validate() error {
	if g.Cells <= 0 {
		return fmt.Errorf("geometry: cell count must be positive, got %d", g.Cells)
	}
	piece := g.PieceSize()
	if piece.X < 1 || piece.Y < 1 {
		return fmt.Errorf("geometry: no room for a piece (cell %v, padding %v)", g.CellSize(), g.Padding)
	}
	return nil
}

// Bounds returns the whole board rectangle on screen.
func (g Geometry) Bounds() core.Rect {
	return core.NewRect(g.Offset.X, g.Offset.Y, g.Size.X, g.Size.Y)
}

// CellSize returns the pixel size of one cell, padding included.
func (g Geometry) CellSize() core.Point {
	return core.Pt(
		(g.Size.X-2*g.Margin.X)/g.Cells,
		(g.Size.Y-2*g.Margin.Y)/g.Cells,
	)
}

// PieceSize returns the drawn size of a piece.
func (g Geometry) PieceSize() core.Point {
	cell := g.CellSize()
	return core.Pt(cell.X-2*g.Padding.X, cell.Y-2*g.Padding.Y)
}

// PlayArea returns the rectangle covered by the cells. When the area inside
// the margin does not divide evenly, the leftover pixels are not part of it.
func (g Geometry) PlayArea() core.Rect {
	cell := g.CellSize()
	return core.NewRect(
		g.Offset.X+g.Margin.X,
		g.Offset.Y+g.Margin.Y,
		cell.X*g.Cells,
		cell.Y*g.Cells,
	)
}

// CellOrigin returns the canonical top-left position of a piece resting in c.
// Rows above the grid (negative Y) are valid and used for spawning.
func (g Geometry) CellOrigin(c Cell) core.Vec2 {
	cell := g.CellSize()
	area := g.PlayArea()
	return core.Vec2{
		X: float64(area.X + c.X*cell.X + g.Padding.X),
		Y: float64(area.Y + c.Y*cell.Y + g.Padding.Y),
	}
}

// CellCenter returns a screen point inside c, used to synthesize gestures.
func (g Geometry) CellCenter(c Cell) core.Point {
	cell := g.CellSize()
	area := g.PlayArea()
	return core.Pt(area.X+c.X*cell.X+cell.X/2, area.Y+c.Y*cell.Y+cell.Y/2)
}

// ScreenToCell maps a screen point to the cell under it.
// It returns ErrOffGrid when the point is outside the playable area.
func (g Geometry) ScreenToCell(p core.Point) (Cell, error) {
	area := g.PlayArea()
	if !area.Contains(p.X, p.Y) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOffGrid, p)
	}
	cell := g.CellSize()
	return C((p.X-area.X)/cell.X, (p.Y-area.Y)/cell.Y), nil
}
