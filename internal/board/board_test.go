package board

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/matchthree/internal/core"
)

const testDT = 1.0 / 60.0

func testParams(size, variants int) Params {
	p := DefaultParams()
	p.Size = size
	p.Variants = variants
	p.SwapSpeed = 100
	p.FallSpeed = 200
	return p
}

func testGeometry(n int) Geometry {
	return GeometryFor(n, core.Pt(10, 10), core.Pt(2, 2), core.Pt(1, 1))
}

// patternLayout returns an n×n layout with no runs: three variants cycling
// so that neither rows nor columns repeat.
func patternLayout(n int) [][]Variant {
	layout := make([][]Variant, n)
	for y := range layout {
		layout[y] = make([]Variant, n)
		for x := range layout[y] {
			layout[y][x] = Variant((x + 2*y) % 3)
		}
	}
	return layout
}

// newTestBoard builds an idle board holding exactly the given layout.
func newTestBoard(t *testing.T, layout [][]Variant, variants int) *Board {
	t.Helper()

	b, err := New(Options{
		Params:   testParams(len(layout), variants),
		Geometry: testGeometry(len(layout)),
		Rand:     rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for y, row := range layout {
		for x, v := range row {
			b.grid.set(C(x, y), b.factory.New(v, C(x, y)))
		}
	}
	b.phase = PhaseIdle
	return b
}

func layoutOf(b *Board) [][]Variant {
	n := b.Size()
	out := make([][]Variant, n)
	for y := range out {
		out[y] = make([]Variant, n)
		for x := range out[y] {
			out[y][x] = b.grid.at(C(x, y)).Variant()
		}
	}
	return out
}

func sameLayout(a, b [][]Variant) bool {
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// settle runs the board until it is idle.
func settle(t *testing.T, b *Board) int {
	t.Helper()
	for tick := 0; tick < 1_000_000; tick++ {
		if b.Phase() == PhaseIdle {
			return tick
		}
		b.Update(testDT)
	}
	t.Fatalf("board did not settle, stuck in %s", b.Phase())
	return 0
}

// runUntil steps the board until it reaches phase want.
func runUntil(t *testing.T, b *Board, want Phase) {
	t.Helper()
	for tick := 0; tick < 100_000; tick++ {
		if b.Phase() == want {
			return
		}
		b.Update(testDT)
	}
	t.Fatalf("board never reached %s, stuck in %s", want, b.Phase())
}

func assertRestingBoard(t *testing.T, b *Board) {
	t.Helper()
	geom := b.Geometry()
	b.grid.each(func(c Cell, p *Piece) {
		if p == nil {
			t.Fatalf("cell %v is empty on a settled board", c)
		}
		if p.Cell() != c {
			t.Errorf("piece in %v believes it is in %v", c, p.Cell())
		}
		if p.State() != Idle {
			t.Errorf("piece in %v is %s on a settled board", c, p.State())
		}
		if p.Position() != geom.CellOrigin(c) {
			t.Errorf("piece in %v at %v, expected %v", c, p.Position(), geom.CellOrigin(c))
		}
	})
}

func TestNewBoardStartsChecking(t *testing.T) {
	b, err := New(Options{
		Params:   testParams(8, 5),
		Geometry: testGeometry(8),
		Rand:     rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if b.Phase() != PhaseChecking {
		t.Errorf("initial phase = %s, expected checking", b.Phase())
	}
	if b.grid.Empty() != 0 {
		t.Errorf("new board has %d empty cells", b.grid.Empty())
	}
	if b.Accepting() {
		t.Error("board should not accept gestures before it settles")
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	small := testParams(2, 5)
	if _, err := New(Options{Params: small, Geometry: testGeometry(2), Rand: rng}); err == nil {
		t.Error("expected error for 2x2 board")
	}

	cramped := GeometryFor(8, core.Pt(2, 2), core.Pt(0, 0), core.Pt(1, 1))
	if _, err := New(Options{Params: testParams(8, 5), Geometry: cramped, Rand: rng}); err == nil {
		t.Error("expected error for cells with no room for a piece")
	}

	if _, err := New(Options{Params: testParams(8, 5), Geometry: testGeometry(6), Rand: rng}); err == nil {
		t.Error("expected error when geometry and params disagree on size")
	}

	if _, err := New(Options{Params: testParams(8, 5), Geometry: testGeometry(8)}); err == nil {
		t.Error("expected error without a random source")
	}
}

func TestBoardConvergesToNoMatches(t *testing.T) {
	for _, tc := range []struct {
		size, variants int
	}{
		{3, 3}, {5, 4}, {8, 5}, {8, 3}, {10, 6},
	} {
		for seed := int64(1); seed <= 5; seed++ {
			b, err := New(Options{
				Params:   testParams(tc.size, tc.variants),
				Geometry: testGeometry(tc.size),
				Rand:     rand.New(rand.NewSource(seed)),
			})
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			settle(t, b)

			if m, ok := FindMatch(b.grid); ok {
				t.Fatalf("size %d seed %d: idle board still has %v", tc.size, seed, m)
			}
			assertRestingBoard(t, b)
		}
	}
}

func TestCascadeAfterSwapsConverges(t *testing.T) {
	b, err := New(Options{
		Params:   testParams(8, 4),
		Geometry: testGeometry(8),
		Rand:     rand.New(rand.NewSource(99)),
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	settle(t, b)

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 40; i++ {
		c := C(rng.Intn(7), rng.Intn(8))
		if err := b.Swap(c, c.Add(1, 0)); err != nil {
			t.Fatalf("Swap() error on idle board: %v", err)
		}
		settle(t, b)
		if m, ok := FindMatch(b.grid); ok {
			t.Fatalf("swap %d: idle board still has %v", i, m)
		}
	}
	assertRestingBoard(t, b)
	if b.Stats().Swaps != 40 {
		t.Errorf("Stats().Swaps = %d, expected 40", b.Stats().Swaps)
	}
}

func TestNonAdjacentDragIsRejected(t *testing.T) {
	b := newTestBoard(t, patternLayout(6), 3)
	before := layoutOf(b)
	geom := b.Geometry()

	b.OnTouch(geom.CellCenter(C(2, 2)))
	b.OnDrag(geom.CellCenter(C(4, 4)))
	b.Update(testDT)

	if b.Phase() != PhaseIdle {
		t.Errorf("phase = %s, expected idle", b.Phase())
	}
	if !sameLayout(before, layoutOf(b)) {
		t.Error("grid changed after a non-adjacent drag")
	}

	// Only the first drag counts: a later adjacent drag is ignored.
	b.OnDrag(geom.CellCenter(C(3, 2)))
	if b.Phase() != PhaseIdle {
		t.Errorf("second drag of the same touch started a swap")
	}
}

func TestSwapWithoutMatchCompletes(t *testing.T) {
	b := newTestBoard(t, patternLayout(5), 3)
	geom := b.Geometry()
	a, c := C(0, 0), C(1, 0)
	va, vc := b.grid.at(a).Variant(), b.grid.at(c).Variant()

	b.OnTouch(geom.CellCenter(a))
	b.OnDrag(geom.CellCenter(c))

	if b.Phase() != PhaseSwapping {
		t.Fatalf("phase = %s, expected swapping", b.Phase())
	}
	// Occupancy swaps before the animation runs.
	if b.grid.at(a).Variant() != vc || b.grid.at(c).Variant() != va {
		t.Error("grid occupancy not swapped immediately")
	}
	if b.grid.at(a).State() != Moving || b.grid.at(c).State() != Moving {
		t.Error("both pieces should be moving")
	}

	runUntil(t, b, PhaseChecking)
	b.Update(testDT)
	if b.Phase() != PhaseIdle {
		t.Errorf("phase after one check = %s, expected idle", b.Phase())
	}
	assertRestingBoard(t, b)
	if b.Stats().Matches != 0 {
		t.Errorf("Stats().Matches = %d, expected 0", b.Stats().Matches)
	}
}

func TestSwapErrors(t *testing.T) {
	b := newTestBoard(t, patternLayout(5), 3)

	if err := b.Swap(C(1, 1), C(1, 1)); !errors.Is(err, ErrSelfSwap) {
		t.Errorf("self swap error = %v, expected ErrSelfSwap", err)
	}
	if err := b.Swap(C(0, 0), C(1, 1)); !errors.Is(err, ErrNotAdjacent) {
		t.Errorf("diagonal swap error = %v, expected ErrNotAdjacent", err)
	}
	if err := b.Swap(C(4, 0), C(5, 0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("out of range swap error = %v, expected ErrOutOfRange", err)
	}
	if b.Phase() != PhaseIdle {
		t.Fatalf("rejected swaps changed the phase to %s", b.Phase())
	}

	if err := b.Swap(C(0, 0), C(0, 1)); err != nil {
		t.Fatalf("valid swap error: %v", err)
	}
	if err := b.Swap(C(2, 2), C(2, 3)); !errors.Is(err, ErrBusy) {
		t.Errorf("swap while swapping error = %v, expected ErrBusy", err)
	}
}

func TestVerticalMatchRefillsColumn(t *testing.T) {
	layout := patternLayout(6)
	for y := 1; y <= 3; y++ {
		layout[y][2] = 3
	}
	b := newTestBoard(t, layout, 4)
	b.phase = PhaseChecking
	above := b.grid.at(C(2, 0))

	b.Update(testDT)
	if b.Phase() != PhaseExploding {
		t.Fatalf("phase = %s, expected exploding", b.Phase())
	}
	for y := 1; y <= 3; y++ {
		if b.grid.at(C(2, y)).State() != Exploding {
			t.Errorf("piece (2,%d) should be exploding", y)
		}
	}

	runUntil(t, b, PhaseFalling)
	if got := b.grid.Empty(); got != 3 {
		t.Fatalf("empty cells after explosion = %d, expected 3", got)
	}

	runUntil(t, b, PhaseRefilling)
	for y := 0; y < 6; y++ {
		empty := b.grid.at(C(2, y)) == nil
		if empty != (y < 3) {
			t.Errorf("cell (2,%d) empty = %v after falling", y, empty)
		}
	}
	if b.grid.at(C(2, 3)) != above {
		t.Error("the piece above the run should have dropped three rows")
	}

	spawnedBefore := b.Stats().Spawned
	b.Update(testDT)
	if got := b.Stats().Spawned - spawnedBefore; got != 3 {
		t.Errorf("spawned %d pieces, expected 3", got)
	}
	if b.grid.Empty() != 0 {
		t.Errorf("grid has %d empty cells after refill", b.grid.Empty())
	}
	seen := map[core.Vec2]bool{}
	for y := 0; y < 3; y++ {
		p := b.grid.at(C(2, y))
		if p.Cell() != C(2, y) {
			t.Errorf("spawned piece targets %v, expected %v", p.Cell(), C(2, y))
		}
		if p.Position().Y >= b.Geometry().CellOrigin(C(2, 0)).Y {
			t.Errorf("spawned piece for row %d starts inside the grid at %v", y, p.Position())
		}
		if seen[p.Position()] {
			t.Errorf("two spawned pieces share position %v", p.Position())
		}
		seen[p.Position()] = true
	}

	runUntil(t, b, PhaseChecking)
	for y := 0; y < 3; y++ {
		p := b.grid.at(C(2, y))
		if p.Position() != b.Geometry().CellOrigin(C(2, y)) {
			t.Errorf("spawned piece in row %d landed at %v", y, p.Position())
		}
	}
}

func TestHorizontalMatchRefillsTopRow(t *testing.T) {
	layout := patternLayout(6)
	for x := 1; x <= 3; x++ {
		layout[2][x] = 3
	}
	b := newTestBoard(t, layout, 4)
	b.phase = PhaseChecking

	runUntil(t, b, PhaseRefilling)
	for x := 0; x < 6; x++ {
		empty := b.grid.at(C(x, 0)) == nil
		if empty != (x >= 1 && x <= 3) {
			t.Errorf("top cell of column %d empty = %v", x, empty)
		}
	}
	if b.grid.Empty() != 3 {
		t.Errorf("empty cells = %d, expected 3", b.grid.Empty())
	}

	settle(t, b)
	if b.Stats().Cleared < 3 || b.Stats().Spawned != b.Stats().Cleared {
		t.Errorf("stats = %+v, expected every cleared piece replaced", b.Stats())
	}
}

func TestUpdateZeroIsIdempotent(t *testing.T) {
	b := newTestBoard(t, patternLayout(6), 3)
	before := layoutOf(b)
	positions := map[Cell]core.Vec2{}
	b.grid.each(func(c Cell, p *Piece) { positions[c] = p.Position() })

	for i := 0; i < 100; i++ {
		b.Update(0)
	}

	if !sameLayout(before, layoutOf(b)) {
		t.Error("Update(0) changed occupancy")
	}
	b.grid.each(func(c Cell, p *Piece) {
		if p.Position() != positions[c] {
			t.Errorf("Update(0) moved piece in %v", c)
		}
	})

	busy, err := New(Options{Params: testParams(6, 4), Geometry: testGeometry(6), Rand: rand.New(rand.NewSource(3))})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	busy.Update(0)
	if busy.Phase() != PhaseChecking {
		t.Errorf("Update(0) advanced the phase to %s", busy.Phase())
	}
}

func TestOffGridTouch(t *testing.T) {
	b := newTestBoard(t, patternLayout(5), 3)

	b.OnTouch(core.Pt(0, 0)) // inside the margin
	if _, ok := b.Gesture(); ok {
		t.Error("off-grid touch should not set an origin")
	}

	b.OnTouch(b.Geometry().CellCenter(C(1, 1)))
	if c, ok := b.Gesture(); !ok || c != C(1, 1) {
		t.Fatalf("Gesture() = %v, %v, expected (1,1)", c, ok)
	}
	b.OnTouch(core.Pt(-40, 500))
	if _, ok := b.Gesture(); ok {
		t.Error("off-grid touch should clear a previous origin")
	}
}

func TestDragWhileBusyIsConsumed(t *testing.T) {
	b := newTestBoard(t, patternLayout(5), 3)
	geom := b.Geometry()

	b.OnTouch(geom.CellCenter(C(3, 3)))
	if err := b.Swap(C(0, 0), C(1, 0)); err != nil {
		t.Fatalf("Swap() error: %v", err)
	}
	b.OnDrag(geom.CellCenter(C(3, 4)))
	settle(t, b)

	before := layoutOf(b)
	b.OnDrag(geom.CellCenter(C(3, 4)))
	if b.Phase() != PhaseIdle || !sameLayout(before, layoutOf(b)) {
		t.Error("a drag seen while busy fired after the board settled")
	}
}

func TestTouchWhileBusyClearsOrigin(t *testing.T) {
	b := newTestBoard(t, patternLayout(5), 3)
	geom := b.Geometry()

	if err := b.Swap(C(0, 0), C(1, 0)); err != nil {
		t.Fatalf("Swap() error: %v", err)
	}
	b.OnTouch(geom.CellCenter(C(2, 2)))
	if _, ok := b.Gesture(); ok {
		t.Error("touch while busy should not set an origin")
	}
}

type recordingRenderer struct {
	views []PieceView
}

func (r *recordingRenderer) DrawPiece(v PieceView) {
	r.views = append(r.views, v)
}

func TestDrawVisitsEveryPieceMovingLast(t *testing.T) {
	b := newTestBoard(t, patternLayout(4), 3)
	if err := b.Swap(C(0, 0), C(0, 1)); err != nil {
		t.Fatalf("Swap() error: %v", err)
	}
	b.Update(testDT)

	var r recordingRenderer
	b.Draw(&r)

	if len(r.views) != 16 {
		t.Fatalf("drew %d pieces, expected 16", len(r.views))
	}
	for _, v := range r.views[:14] {
		if v.State != Idle {
			t.Errorf("moving piece %v drawn before resting ones", v.Cell)
		}
	}
	for _, v := range r.views[14:] {
		if v.State != Moving {
			t.Errorf("expected moving pieces last, got %s at %v", v.State, v.Cell)
		}
		if v.Size != b.Geometry().PieceSize() {
			t.Errorf("view size = %v, expected %v", v.Size, b.Geometry().PieceSize())
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() [][]Variant {
		b, err := New(Options{Params: testParams(8, 5), Geometry: testGeometry(8), Rand: rand.New(rand.NewSource(42))})
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		settle(t, b)
		_ = b.Swap(C(3, 3), C(4, 3))
		settle(t, b)
		return layoutOf(b)
	}

	if !sameLayout(run(), run()) {
		t.Error("same seed and frame sequence produced different boards")
	}
}

func TestPieceAtBounds(t *testing.T) {
	b := newTestBoard(t, patternLayout(4), 3)

	if p, err := b.PieceAt(3, 3); err != nil || p == nil {
		t.Errorf("PieceAt(3, 3) = %v, %v", p, err)
	}
	for _, c := range []Cell{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, err := b.PieceAt(c.X, c.Y); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PieceAt(%d, %d) error = %v, expected ErrOutOfRange", c.X, c.Y, err)
		}
	}
}
