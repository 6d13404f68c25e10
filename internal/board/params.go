package board

import "fmt"

// Params holds the tunables of a board. Speeds are in pixels per second and
// durations in seconds.
type Params struct {
	Size     int // Cells per row and column
	Variants int // Number of piece variants in play

	SwapSpeed float64
	FallSpeed float64

	BlinkMin   float64 // Shortest pause between blinks
	BlinkMax   float64 // Longest pause between blinks
	BlinkFrame float64 // How long the eyes stay shut

	ExplodeFrame  float64
	ExplodeFrames int
}

// DefaultParams returns the classic 8x8 board with five variants.
func DefaultParams() Params {
	return Params{
		Size:          8,
		Variants:      5,
		SwapSpeed:     24,
		FallSpeed:     40,
		BlinkMin:      1.0,
		BlinkMax:      10.0,
		BlinkFrame:    0.2,
		ExplodeFrame:  0.12,
		ExplodeFrames: 5,
	}
}

// Validate reports the first parameter a board cannot run with.
func (p Params) Validate() error {
	switch {
	case p.Size < 3:
		return fmt.Errorf("board size must be at least 3, got %d", p.Size)
	case p.Variants < 2 || p.Variants > VariantCount:
		return fmt.Errorf("variants must be in [2,%d], got %d", VariantCount, p.Variants)
	case p.SwapSpeed <= 0 || p.FallSpeed <= 0:
		return fmt.Errorf("speeds must be positive (swap %v, fall %v)", p.SwapSpeed, p.FallSpeed)
	case p.BlinkMin <= 0 || p.BlinkMax < p.BlinkMin:
		return fmt.Errorf("blink interval [%v,%v] is invalid", p.BlinkMin, p.BlinkMax)
	case p.BlinkFrame <= 0 || p.ExplodeFrame <= 0:
		return fmt.Errorf("frame durations must be positive")
	case p.ExplodeFrames < 1:
		return fmt.Errorf("explode animation needs at least one frame, got %d", p.ExplodeFrames)
	}
	return nil
}
