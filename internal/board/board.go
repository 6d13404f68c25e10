// Package board implements the match-three board: a grid of pieces that
// swaps on gestures and resolves matches through animated phases until no
// run of three is left.
package board

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matchthree/internal/core"
)

// Phase is the step of the resolve cycle the board is in.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSwapping
	PhaseFalling
	PhaseRefilling
	PhaseExploding
	PhaseChecking
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSwapping:
		return "swapping"
	case PhaseFalling:
		return "falling"
	case PhaseRefilling:
		return "refilling"
	case PhaseExploding:
		return "exploding"
	case PhaseChecking:
		return "checking"
	default:
		return "unknown"
	}
}

// Renderer draws pieces. The board calls it once per piece per frame.
type Renderer interface {
	DrawPiece(v PieceView)
}

// Options configures a new board.
type Options struct {
	Params   Params
	Geometry Geometry
	Rand     *rand.Rand  // Required
	Logger   *log.Logger // Optional, discards output when nil
}

// Stats counts what the board has done since it was created.
type Stats struct {
	Swaps   int // Swaps started
	Matches int // Runs cleared
	Cleared int // Pieces removed by matches
	Spawned int // Pieces created by refills
}

// Board owns the grid and every piece in it.
type Board struct {
	params  Params
	geom    Geometry
	grid    *Grid
	factory *Factory
	logger  *log.Logger

	phase     Phase
	exploding []*Piece
	refilled  bool
	gestures  *GestureTranslator
	stats     Stats
}

// New creates a board filled with random pieces. The board starts in
// PhaseChecking so accidental runs are cleared before it becomes idle.
func New(opts Options) (*Board, error) {
	if err := opts.Params.Validate(); err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if opts.Geometry.Cells != opts.Params.Size {
		return nil, fmt.Errorf("board: geometry has %d cells per row, params ask for %d", opts.Geometry.Cells, opts.Params.Size)
	}
	if err := opts.Geometry.Validate(); err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("board: a random source is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Board{
		params: opts.Params,
		geom:   opts.Geometry,
		grid:   NewGrid(opts.Params.Size),
		logger: logger,
		phase:  PhaseChecking,
	}
	b.factory = NewFactory(&b.geom, &b.params, opts.Rand)
	b.gestures = NewGestureTranslator(b)

	b.grid.each(func(c Cell, _ *Piece) {
		b.grid.set(c, b.factory.Random(c))
	})
	return b, nil
}

// Phase returns the current phase.
func (b *Board) Phase() Phase {
	return b.phase
}

// Accepting reports whether the board takes new gestures.
func (b *Board) Accepting() bool {
	return b.phase == PhaseIdle
}

// Size returns the number of cells per row.
func (b *Board) Size() int {
	return b.grid.Size()
}

// Geometry returns the screen placement of the board.
func (b *Board) Geometry() Geometry {
	return b.geom
}

// Params returns the tunables the board was built with.
func (b *Board) Params() Params {
	return b.params
}

// Stats returns the activity counters.
func (b *Board) Stats() Stats {
	return b.stats
}

// PieceAt returns the piece in (x, y), nil when the cell is empty.
func (b *Board) PieceAt(x, y int) (*Piece, error) {
	return b.grid.CellAt(x, y)
}

// Rows returns the grid as text, see Grid.Rows.
func (b *Board) Rows() []string {
	return b.grid.Rows()
}

// ScreenToCell maps a screen point to a board cell.
func (b *Board) ScreenToCell(p core.Point) (Cell, error) {
	return b.geom.ScreenToCell(p)
}

// OnTouch starts a gesture at screen point p.
func (b *Board) OnTouch(p core.Point) {
	b.gestures.OnTouch(p)
}

// OnDrag continues the current gesture at screen point p.
func (b *Board) OnDrag(p core.Point) {
	b.gestures.OnDrag(p)
}

// Gesture returns the origin cell of the pending gesture, if any.
func (b *Board) Gesture() (Cell, bool) {
	if !b.gestures.Pending() {
		return Cell{}, false
	}
	return b.gestures.Origin()
}

// Swap exchanges the pieces in first and second and starts the swap animation.
// The grid changes immediately; whether the swap made a match is found out
// afterwards in PhaseChecking.
func (b *Board) Swap(first, second Cell) error {
	if !b.grid.InBounds(first) || !b.grid.InBounds(second) {
		return fmt.Errorf("%w: swap %v with %v", ErrOutOfRange, first, second)
	}
	if first == second {
		b.logger.Warn("ignoring swap of a cell with itself", "cell", first)
		return ErrSelfSwap
	}
	if b.phase != PhaseIdle {
		return fmt.Errorf("%w: phase %s", ErrBusy, b.phase)
	}
	if !first.Adjacent(second) {
		return fmt.Errorf("%w: %v and %v", ErrNotAdjacent, first, second)
	}

	a, c := b.grid.at(first), b.grid.at(second)
	b.grid.set(first, c)
	b.grid.set(second, a)
	a.MoveTo(second, MoveSwap)
	c.MoveTo(first, MoveSwap)

	b.stats.Swaps++
	b.logger.Debug("swap", "from", first, "to", second)
	b.setPhase(PhaseSwapping)
	return nil
}

// Update advances every piece by dt seconds and then the phase machine by
// one step. A non-positive dt changes nothing.
func (b *Board) Update(dt float64) {
	if dt <= 0 {
		return
	}

	b.grid.each(func(_ Cell, p *Piece) {
		if p != nil {
			p.Update(dt)
		}
	})

	switch b.phase {
	case PhaseSwapping:
		if !b.anyMoving() {
			b.setPhase(PhaseChecking)
		}
	case PhaseChecking:
		b.check()
	case PhaseExploding:
		b.finishExplosions()
	case PhaseFalling:
		b.fall()
	case PhaseRefilling:
		b.refill()
	}
}

// Draw hands every piece to r. Pieces in motion come last so they are drawn
// over resting ones.
func (b *Board) Draw(r Renderer) {
	var active []*Piece
	b.grid.each(func(_ Cell, p *Piece) {
		switch {
		case p == nil:
		case p.State() == Idle:
			r.DrawPiece(p.View())
		default:
			active = append(active, p)
		}
	})
	for _, p := range active {
		r.DrawPiece(p.View())
	}
}

// check resolves at most one run per pass.
func (b *Board) check() {
	m, ok := FindMatch(b.grid)
	if !ok {
		b.setPhase(PhaseIdle)
		return
	}

	b.logger.Debug("match found", "start", m.Start, "end", m.End, "len", m.Len())
	b.stats.Matches++
	b.exploding = b.exploding[:0]
	for _, c := range m.Cells() {
		p := b.grid.at(c)
		p.Explode()
		b.exploding = append(b.exploding, p)
	}
	b.setPhase(PhaseExploding)
}

func (b *Board) finishExplosions() {
	for _, p := range b.exploding {
		if !p.Exploded() {
			return
		}
	}
	for _, p := range b.exploding {
		b.grid.set(p.Cell(), nil)
	}
	b.stats.Cleared += len(b.exploding)
	b.exploding = b.exploding[:0]
	b.setPhase(PhaseFalling)
}

// fall drops every resting piece that has an empty cell below it by one row.
// Columns are scanned bottom to top so a whole stack starts falling together.
func (b *Board) fall() {
	n := b.grid.Size()
	gaps := false
	for x := 0; x < n; x++ {
		for y := n - 1; y > 0; y-- {
			below := C(x, y)
			if b.grid.at(below) != nil {
				continue
			}
			above := below.Add(0, -1)
			p := b.grid.at(above)
			if p == nil {
				continue
			}
			gaps = true
			if p.State() == Moving {
				continue
			}
			b.grid.set(below, p)
			b.grid.set(above, nil)
			p.MoveTo(below, MoveFall)
		}
	}

	if !gaps && !b.anyMoving() {
		b.setPhase(PhaseRefilling)
	}
}

// refill spawns one piece above the grid for every empty cell on the first
// step and waits for them to land on the following ones.
func (b *Board) refill() {
	if !b.refilled {
		n := b.grid.Size()
		for x := 0; x < n; x++ {
			var empty []int
			for y := 0; y < n; y++ {
				if b.grid.at(C(x, y)) == nil {
					empty = append(empty, y)
				}
			}
			for i, y := range empty {
				spawn := C(x, i-len(empty))
				b.grid.set(C(x, y), b.factory.Spawn(C(x, y), spawn))
			}
			b.stats.Spawned += len(empty)
		}
		b.refilled = true
		return
	}

	if !b.anyMoving() {
		b.refilled = false
		b.setPhase(PhaseChecking)
	}
}

func (b *Board) anyMoving() bool {
	for _, p := range b.grid.cells {
		if p != nil && p.State() == Moving {
			return true
		}
	}
	return false
}

func (b *Board) setPhase(p Phase) {
	if p == b.phase {
		return
	}
	b.logger.Debug("phase", "from", b.phase, "to", p)
	b.phase = p
}
