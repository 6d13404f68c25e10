// Package config provides YAML-based board configuration loading and
// named presets for the match-three game.
package config

import (
	"fmt"

	"github.com/vovakirdan/matchthree/internal/board"
	"github.com/vovakirdan/matchthree/internal/core"
)

// MatchThreeConfig contains all configuration for a match-three board.
type MatchThreeConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Motion    MotionConfig    `yaml:"motion"`
	Animation AnimationConfig `yaml:"animation"`
	Geometry  GeometryConfig  `yaml:"geometry"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size     int `yaml:"size"`     // Cells per row and column
	Variants int `yaml:"variants"` // Piece kinds in play
}

// MotionConfig defines piece speeds in screen cells per second.
type MotionConfig struct {
	SwapSpeed float64 `yaml:"swap_speed"`
	FallSpeed float64 `yaml:"fall_speed"`
}

// AnimationConfig defines animation timings in seconds.
type AnimationConfig struct {
	BlinkMin      float64 `yaml:"blink_min"`
	BlinkMax      float64 `yaml:"blink_max"`
	BlinkFrame    float64 `yaml:"blink_frame"`
	ExplodeFrame  float64 `yaml:"explode_frame"`
	ExplodeFrames int     `yaml:"explode_frames"`
}

// GeometryConfig defines how one cell is laid out on screen.
type GeometryConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	MarginX    int `yaml:"margin_x"`
	MarginY    int `yaml:"margin_y"`
	PaddingX   int `yaml:"padding_x"`
	PaddingY   int `yaml:"padding_y"`
}

// Params converts the config into board parameters.
func (c MatchThreeConfig) Params() board.Params {
	return board.Params{
		Size:          c.Board.Size,
		Variants:      c.Board.Variants,
		SwapSpeed:     c.Motion.SwapSpeed,
		FallSpeed:     c.Motion.FallSpeed,
		BlinkMin:      c.Animation.BlinkMin,
		BlinkMax:      c.Animation.BlinkMax,
		BlinkFrame:    c.Animation.BlinkFrame,
		ExplodeFrame:  c.Animation.ExplodeFrame,
		ExplodeFrames: c.Animation.ExplodeFrames,
	}
}

// BoardGeometry returns the board geometry at the screen origin.
func (c MatchThreeConfig) BoardGeometry() board.Geometry {
	g := c.Geometry
	return board.GeometryFor(
		c.Board.Size,
		core.Pt(g.CellWidth, g.CellHeight),
		core.Pt(g.MarginX, g.MarginY),
		core.Pt(g.PaddingX, g.PaddingY),
	)
}

// Validate reports the first setting the game cannot run with.
func (c MatchThreeConfig) Validate() error {
	switch {
	case c.Board.Size < 3:
		return fmt.Errorf("board.size must be at least 3, got %d", c.Board.Size)
	case c.Board.Variants < 3 || c.Board.Variants > board.VariantCount:
		return fmt.Errorf("board.variants must be in [3,%d], got %d", board.VariantCount, c.Board.Variants)
	case c.Motion.SwapSpeed <= 0:
		return fmt.Errorf("motion.swap_speed must be positive, got %v", c.Motion.SwapSpeed)
	case c.Motion.FallSpeed <= c.Motion.SwapSpeed:
		return fmt.Errorf("motion.fall_speed (%v) must be greater than swap_speed (%v)",
			c.Motion.FallSpeed, c.Motion.SwapSpeed)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	if err := c.BoardGeometry().Validate(); err != nil {
		return err
	}
	return nil
}
