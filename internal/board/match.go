package board

import "fmt"

// MinRun is the shortest run of equal variants that counts as a match.
const MinRun = 3

// Orientation is the direction of a run.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Match is a run of at least MinRun equal variants in one row or column.
// Start and End are inclusive.
type Match struct {
	Orientation Orientation
	Start       Cell
	End         Cell
}

// Len returns the number of cells in the run.
func (m Match) Len() int {
	if m.Orientation == Horizontal {
		return m.End.X - m.Start.X + 1
	}
	return m.End.Y - m.Start.Y + 1
}

// Cells lists the cells of the run from Start to End.
func (m Match) Cells() []Cell {
	cells := make([]Cell, 0, m.Len())
	dx, dy := 1, 0
	if m.Orientation == Vertical {
		dx, dy = 0, 1
	}
	for i, c := 0, m.Start; i < m.Len(); i, c = i+1, c.Add(dx, dy) {
		cells = append(cells, c)
	}
	return cells
}

func (m Match) String() string {
	return fmt.Sprintf("%s %v-%v (%d)", m.Orientation, m.Start, m.End, m.Len())
}

// FindMatch returns the first run found. Rows are scanned top to bottom,
// left to right, before any column is scanned; columns go left to right,
// top to bottom. Empty cells never match.
func FindMatch(g *Grid) (Match, bool) {
	n := g.Size()

	for y := 0; y < n; y++ {
		for x0 := 0; x0 <= n-MinRun; x0++ {
			if x1 := runEnd(g, C(x0, y), 1, 0); x1-x0 >= MinRun {
				return Match{Orientation: Horizontal, Start: C(x0, y), End: C(x1-1, y)}, true
			}
		}
	}

	for x := 0; x < n; x++ {
		for y0 := 0; y0 <= n-MinRun; y0++ {
			if y1 := runEnd(g, C(x, y0), 0, 1); y1-y0 >= MinRun {
				return Match{Orientation: Vertical, Start: C(x, y0), End: C(x, y1-1)}, true
			}
		}
	}

	return Match{}, false
}

// runEnd walks from start in direction (dx, dy) while the variant repeats
// and returns the exclusive end coordinate along that axis.
func runEnd(g *Grid, start Cell, dx, dy int) int {
	first := g.at(start)
	c := start.Add(dx, dy)
	if first != nil {
		for g.InBounds(c) {
			p := g.at(c)
			if p == nil || p.variant != first.variant {
				break
			}
			c = c.Add(dx, dy)
		}
	}
	if dx != 0 {
		return c.X
	}
	return c.Y
}
