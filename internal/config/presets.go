package config

import "fmt"

// Preset represents a named board layout.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetMini    Preset = "mini"
	PresetWide    Preset = "wide"
)

// Presets lists every preset in menu order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetMini, PresetWide}
}

// Description returns a short human-readable summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetClassic:
		return "8x8 board, 5 kinds"
	case PresetMini:
		return "6x6 board, 4 kinds"
	case PresetWide:
		return "10x10 board, 6 kinds"
	default:
		return ""
	}
}

// ParsePreset resolves a preset by name.
func ParsePreset(name string) (Preset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q", name)
}

// ApplyPreset modifies the board section of the config for a preset.
// Motion, animation and geometry are left as loaded.
func ApplyPreset(cfg *MatchThreeConfig, preset Preset) {
	switch preset {
	case PresetClassic:
		cfg.Board.Size = 8
		cfg.Board.Variants = 5
	case PresetMini:
		cfg.Board.Size = 6
		cfg.Board.Variants = 4
	case PresetWide:
		cfg.Board.Size = 10
		cfg.Board.Variants = 6
	}
}
