package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// userConfigRel is the config file location relative to the XDG config dirs.
var userConfigRel = filepath.Join("tui-puyo", "puyo.yaml")

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/puyo.yaml"

// LoadPuyo loads the board configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-puyo/puyo.yaml (and the
// XDG system dirs) -> ./configs/puyo.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadPuyo(customPath string) (PuyoConfig, error) {
	// Try custom path first
	if customPath != "" {
		return parsePuyoFile(customPath)
	}

	// Try user config directories
	if userCfgPath, err := xdg.SearchConfigFile(userConfigRel); err == nil {
		if cfg, err := parsePuyoFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := parsePuyoFile(localConfigPath); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parsePuyo(defaultPuyoYAML)
	if err != nil {
		return DefaultPuyoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parsePuyoFile(path string) (PuyoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PuyoConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parsePuyo(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func parsePuyo(data []byte) (PuyoConfig, error) {
	cfg := DefaultPuyoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyPuyoPreset modifies the config based on a difficulty preset.
func ApplyPuyoPreset(cfg *PuyoConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
