package config

import (
	_ "embed"
)

//go:embed defaults/matchthree.yaml
var defaultMatchThreeYAML []byte

// DefaultMatchThreeConfig returns the classic 8x8 board with five variants.
func DefaultMatchThreeConfig() MatchThreeConfig {
	return MatchThreeConfig{
		Board: BoardConfig{
			Size:     8,
			Variants: 5,
		},
		Motion: MotionConfig{
			SwapSpeed: 24,
			FallSpeed: 40,
		},
		Animation: AnimationConfig{
			BlinkMin:      1.0,
			BlinkMax:      10.0,
			BlinkFrame:    0.2,
			ExplodeFrame:  0.12,
			ExplodeFrames: 5,
		},
		Geometry: GeometryConfig{
			CellWidth:  4,
			CellHeight: 2,
			MarginX:    2,
			MarginY:    1,
			PaddingX:   1,
			PaddingY:   0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatchThreeYAML
}
