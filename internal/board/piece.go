package board

import (
	"math/rand"

	"github.com/vovakirdan/matchthree/internal/core"
)

// Variant is the kind of a piece. Pieces match when their variants are equal.
type Variant uint8

const (
	Lemon Variant = iota
	Apple
	Fig
	Strawberry
	Carrot
	Grape

	// VariantCount is the number of variants that exist.
	VariantCount = int(Grape) + 1
)

func (v Variant) String() string {
	switch v {
	case Lemon:
		return "lemon"
	case Apple:
		return "apple"
	case Fig:
		return "fig"
	case Strawberry:
		return "strawberry"
	case Carrot:
		return "carrot"
	case Grape:
		return "grape"
	default:
		return "unknown"
	}
}

// MoveState is what a piece is busy with.
type MoveState uint8

const (
	Idle MoveState = iota
	Moving
	Exploding
)

func (s MoveState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Exploding:
		return "exploding"
	default:
		return "unknown"
	}
}

// MoveKind selects the speed of a movement.
type MoveKind uint8

const (
	MoveSwap MoveKind = iota
	MoveFall
)

// movement is a straight run along one axis from one cell position to another.
type movement struct {
	kind       MoveKind
	from, to   core.Vec2
	horizontal bool
	dir        float64 // +1 or -1 along the axis
	progress   float64
	distance   float64
	speed      float64
}

// Piece occupies one grid cell. Only the board moves pieces between cells;
// a piece updates its own movement and animation.
type Piece struct {
	f *Factory

	variant   Variant
	cell      Cell
	pos       core.Vec2
	state     MoveState
	move      movement
	anim      Animator
	nextBlink float64
}

// Factory creates pieces for one board. Every piece keeps a pointer to it for
// the shared geometry, params and random source.
type Factory struct {
	geom   *Geometry
	params *Params
	anims  *AnimTable
	rng    *rand.Rand
}

// NewFactory builds a piece factory. The geometry and params must not change
// while pieces created by it are alive.
func NewFactory(geom *Geometry, params *Params, rng *rand.Rand) *Factory {
	anims := NewAnimTable(*params)
	return &Factory{geom: geom, params: params, anims: &anims, rng: rng}
}

// New creates a piece of the given variant resting in c.
func (f *Factory) New(v Variant, c Cell) *Piece {
	p := &Piece{
		f:       f,
		variant: v,
		cell:    c,
		pos:     f.geom.CellOrigin(c),
	}
	p.anim.table = f.anims
	p.blink()
	return p
}

// Random creates a piece with a uniformly drawn variant resting in c.
func (f *Factory) Random(c Cell) *Piece {
	return f.New(Variant(f.rng.Intn(f.params.Variants)), c)
}

// Spawn creates a random piece positioned at spawn and falling into target.
func (f *Factory) Spawn(target, spawn Cell) *Piece {
	p := f.Random(spawn)
	p.MoveTo(target, MoveFall)
	return p
}

// Variant returns the kind of the piece.
func (p *Piece) Variant() Variant {
	return p.variant
}

// Cell returns the grid cell the piece belongs to. While moving this is
// already the destination.
func (p *Piece) Cell() Cell {
	return p.cell
}

// Position returns the continuous screen position of the piece.
func (p *Piece) Position() core.Vec2 {
	return p.pos
}

// State returns what the piece is busy with.
func (p *Piece) State() MoveState {
	return p.state
}

// Anim returns the current animation tag and frame.
func (p *Piece) Anim() (AnimTag, int) {
	return p.anim.Tag(), p.anim.Frame()
}

// MoveTo assigns the piece to target and starts animating toward it.
// The axis follows the position delta, horizontal first.
func (p *Piece) MoveTo(target Cell, kind MoveKind) {
	p.cell = target
	to := p.f.geom.CellOrigin(target)

	m := movement{kind: kind, from: p.pos, to: to}
	delta := to.Sub(p.pos)
	switch {
	case delta.X != 0:
		m.horizontal = true
		m.distance, m.dir = absSign(delta.X)
	default:
		m.distance, m.dir = absSign(delta.Y)
	}
	m.speed = p.f.params.SwapSpeed
	if kind == MoveFall {
		m.speed = p.f.params.FallSpeed
	}

	if m.distance == 0 {
		p.pos = to
		p.state = Idle
		return
	}
	p.move = m
	p.state = Moving
}

// Explode starts the clear animation. The piece stays in the grid until the
// board removes it.
func (p *Piece) Explode() {
	p.state = Exploding
	p.anim.Play(AnimExplode)
}

// Exploded reports whether the clear animation has finished.
func (p *Piece) Exploded() bool {
	return p.state == Exploding && p.anim.Finished()
}

// Update advances movement and animation by dt seconds.
func (p *Piece) Update(dt float64) {
	p.anim.Advance(dt)
	if p.state == Exploding {
		return
	}

	if p.state == Moving {
		p.advance(dt)
	}

	if p.anim.Tag() == AnimBlink && p.anim.Finished() {
		p.anim.Play(AnimIdle)
	}
	p.nextBlink -= dt
	if p.nextBlink <= 0 {
		p.blink()
	}
}

func (p *Piece) advance(dt float64) {
	m := &p.move
	m.progress += m.speed * dt
	if m.progress >= m.distance {
		// Snap to avoid drift from uneven frame times.
		p.pos = m.to
		p.state = Idle
		return
	}
	if m.horizontal {
		p.pos = core.Vec2{X: m.from.X + m.dir*m.progress, Y: m.from.Y}
	} else {
		p.pos = core.Vec2{X: m.from.X, Y: m.from.Y + m.dir*m.progress}
	}
}

func (p *Piece) blink() {
	p.anim.Play(AnimBlink)
	lo, hi := p.f.params.BlinkMin, p.f.params.BlinkMax
	p.nextBlink = lo + p.f.rng.Float64()*(hi-lo)
}

// PieceView is what a renderer needs to draw one piece.
type PieceView struct {
	Variant Variant
	Cell    Cell
	Pos     core.Vec2
	Size    core.Point
	State   MoveState
	Anim    AnimTag
	Frame   int
}

// View samples the piece for drawing.
func (p *Piece) View() PieceView {
	tag, frame := p.Anim()
	return PieceView{
		Variant: p.variant,
		Cell:    p.cell,
		Pos:     p.pos,
		Size:    p.f.geom.PieceSize(),
		State:   p.state,
		Anim:    tag,
		Frame:   frame,
	}
}

func absSign(v float64) (float64, float64) {
	if v < 0 {
		return -v, -1
	}
	return v, 1
}
