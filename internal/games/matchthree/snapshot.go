package matchthree

import "github.com/vovakirdan/matchthree/internal/board"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateSettled     GameStateType = "settled"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Preset string
	Phase  string
	Stats  board.Stats
	Cursor board.Cell
	Picked bool
	Layout []string // Board.Rows: variants as letters from 'a', empty cells as dots
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Preset: string(g.preset),
		Cursor: g.cursor,
		Picked: g.picked,
	}

	switch {
	case g.tooSmall || g.board == nil:
		s.State = StatePausedSmall
		return s
	case g.paused:
		s.State = StatePaused
	case g.board.Accepting():
		s.State = StateSettled
	default:
		s.State = StateResolving
	}

	s.Phase = g.board.Phase().String()
	s.Stats = g.board.Stats()
	s.Layout = g.board.Rows()
	return s
}
