package board

import "errors"

var (
	// ErrOutOfRange means a grid index outside [0,N). Internal code never
	// produces it; callers that see it have a bug.
	ErrOutOfRange = errors.New("board: cell out of range")

	// ErrOffGrid means a screen point outside the playable area.
	ErrOffGrid = errors.New("board: point off grid")

	// ErrSelfSwap means a swap whose target is its own source.
	ErrSelfSwap = errors.New("board: swap with itself")

	// ErrNotAdjacent means the two swap cells are not one orthogonal step apart.
	ErrNotAdjacent = errors.New("board: cells not adjacent")

	// ErrBusy means a swap was requested while the board was not idle.
	ErrBusy = errors.New("board: not accepting swaps")
)
