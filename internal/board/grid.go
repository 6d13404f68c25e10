package board

import (
	"fmt"
	"strings"
)

// Cell addresses a grid position: column X, row Y, row 0 at the top.
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether o is exactly one horizontal or vertical step away.
func (c Cell) Adjacent(o Cell) bool {
	dx, dy := o.X-c.X, o.Y-c.Y
	switch {
	case dy == 0:
		return dx == 1 || dx == -1
	case dx == 0:
		return dy == 1 || dy == -1
	default:
		return false
	}
}

// Grid is an N×N array of optional pieces stored row-major.
// At most one piece occupies a cell; nil means empty.
type Grid struct {
	n     int
	cells []*Piece
}

// NewGrid creates an empty n×n grid.
func NewGrid(n int) *Grid {
	return &Grid{n: n, cells: make([]*Piece, n*n)}
}

// Size returns N.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.n && c.Y >= 0 && c.Y < g.n
}

// CellAt returns the occupant of (x, y), nil for an empty cell.
func (g *Grid) CellAt(x, y int) (*Piece, error) {
	c := C(x, y)
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfRange, c, g.n, g.n)
	}
	return g.at(c), nil
}

// at and set skip the bounds check; callers iterate within [0,N).
func (g *Grid) at(c Cell) *Piece {
	return g.cells[c.Y*g.n+c.X]
}

func (g *Grid) set(c Cell, p *Piece) {
	g.cells[c.Y*g.n+c.X] = p
}

// each calls fn for every cell in row-major order.
func (g *Grid) each(fn func(c Cell, p *Piece)) {
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			c := C(x, y)
			fn(c, g.at(c))
		}
	}
}

// Empty returns the number of unoccupied cells.
func (g *Grid) Empty() int {
	count := 0
	for _, p := range g.cells {
		if p == nil {
			count++
		}
	}
	return count
}

// Rows renders the grid as text, one string per row. Variants are lettered
// from 'a' and empty cells are dots.
func (g *Grid) Rows() []string {
	rows := make([]string, g.n)
	var sb strings.Builder
	for y := 0; y < g.n; y++ {
		sb.Reset()
		for x := 0; x < g.n; x++ {
			p := g.at(C(x, y))
			if p == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte('a' + byte(p.variant))
		}
		rows[y] = sb.String()
	}
	return rows
}
