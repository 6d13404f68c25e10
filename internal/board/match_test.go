package board

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/matchthree/internal/core"
)

// gridFromRows builds a grid from rows of letters; 'a' is variant 0 and
// '.' leaves the cell empty.
func gridFromRows(rows ...string) *Grid {
	n := len(rows)
	geom := GeometryFor(n, core.Pt(4, 4), core.Pt(0, 0), core.Pt(0, 0))
	params := DefaultParams()
	params.Size = n
	f := NewFactory(&geom, &params, rand.New(rand.NewSource(1)))

	g := NewGrid(n)
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				continue
			}
			g.set(C(x, y), f.New(Variant(r-'a'), C(x, y)))
		}
	}
	return g
}

func TestFindMatch(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		want  Match
		found bool
	}{
		{
			name: "first run wins over shorter pair",
			rows: []string{
				"aaabb",
				"bcabc",
				"cabca",
				"abcab",
				"bcabc",
			},
			want:  Match{Orientation: Horizontal, Start: C(0, 0), End: C(2, 0)},
			found: true,
		},
		{
			name: "no runs",
			rows: []string{
				"abcab",
				"bcabc",
				"cabca",
				"abcab",
				"bcabc",
			},
		},
		{
			name: "horizontal beats earlier vertical",
			rows: []string{
				"abcab",
				"acabc",
				"abcab",
				"cabca",
				"bbbca",
			},
			want:  Match{Orientation: Horizontal, Start: C(0, 4), End: C(2, 4)},
			found: true,
		},
		{
			name: "vertical run",
			rows: []string{
				"abcab",
				"acabc",
				"abcab",
				"cabca",
				"bcabc",
			},
			want:  Match{Orientation: Vertical, Start: C(0, 0), End: C(0, 2)},
			found: true,
		},
		{
			name: "long run reported whole",
			rows: []string{
				"cdddd",
				"bcabc",
				"cabca",
				"abcab",
				"bcabc",
			},
			want:  Match{Orientation: Horizontal, Start: C(1, 0), End: C(4, 0)},
			found: true,
		},
		{
			name: "run ending at the bottom edge",
			rows: []string{
				"abcab",
				"bcabc",
				"cabcb",
				"abcab",
				"bcabb",
			},
			want:  Match{Orientation: Vertical, Start: C(4, 2), End: C(4, 4)},
			found: true,
		},
		{
			name: "empty cells never match",
			rows: []string{
				"...ab",
				"bcabc",
				"c.bca",
				"a.cab",
				"b.abc",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindMatch(gridFromRows(tc.rows...))
			if ok != tc.found {
				t.Fatalf("FindMatch() found = %v, expected %v (%v)", ok, tc.found, got)
			}
			if ok && got != tc.want {
				t.Errorf("FindMatch() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestMatchCells(t *testing.T) {
	h := Match{Orientation: Horizontal, Start: C(1, 2), End: C(4, 2)}
	if h.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", h.Len())
	}
	cells := h.Cells()
	expected := []Cell{C(1, 2), C(2, 2), C(3, 2), C(4, 2)}
	if len(cells) != len(expected) {
		t.Fatalf("Cells() = %v", cells)
	}
	for i := range cells {
		if cells[i] != expected[i] {
			t.Errorf("Cells()[%d] = %v, expected %v", i, cells[i], expected[i])
		}
	}

	v := Match{Orientation: Vertical, Start: C(3, 0), End: C(3, 2)}
	if v.Len() != 3 || v.Cells()[2] != C(3, 2) {
		t.Errorf("vertical match cells = %v", v.Cells())
	}
	if s := v.String(); s != "vertical (3,0)-(3,2) (3)" {
		t.Errorf("String() = %q", s)
	}
}

func TestGridRows(t *testing.T) {
	rows := []string{"ab.", "cab", ".ba"}
	got := gridFromRows(rows...).Rows()
	for y := range rows {
		if got[y] != rows[y] {
			t.Errorf("row %d = %q, expected %q", y, got[y], rows[y])
		}
	}
}
