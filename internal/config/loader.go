package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "matchthree.yaml"

// LoadMatchThree loads the board configuration.
// Search order: customPath -> ~/.matchthree/configs/matchthree.yaml -> ./configs/matchthree.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read or parsed is an error;
// broken files further down the search order are skipped.
func LoadMatchThree(customPath string) (MatchThreeConfig, error) {
	cfg := DefaultMatchThreeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if loaded, ok := decodeFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := decodeFile(filepath.Join("configs", ConfigFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultMatchThreeConfig()
	if err := yaml.Unmarshal(defaultMatchThreeYAML, &embedded); err != nil {
		return DefaultMatchThreeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

func decodeFile(path string) (MatchThreeConfig, bool) {
	cfg := DefaultMatchThreeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// Marshal encodes the config as YAML.
func Marshal(cfg MatchThreeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".matchthree", "configs", filename)
}
