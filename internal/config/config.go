// Package config provides YAML-based configuration loading and difficulty
// management for the puzzle engine.
package config

import (
	"errors"
	"fmt"
)

// PuyoConfig contains the tuning parameters of a board.
type PuyoConfig struct {
	Timing     PuyoTiming       `yaml:"timing"`
	Scoring    PuyoScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PuyoTiming defines tick-level pacing.
type PuyoTiming struct {
	DropCycle    int `yaml:"drop_cycle"`     // ticks between one-row drops
	SettleEvery  int `yaml:"settle_every"`   // gravity/clear/garbage run every N ticks
	MinDropCycle int `yaml:"min_drop_cycle"` // floor for difficulty progression
}

// PuyoScoring defines score-to-garbage conversion.
type PuyoScoring struct {
	PointsPerGarbage int `yaml:"points_per_garbage"`
}

// Validate reports the first inconsistent parameter.
func (c PuyoConfig) Validate() error {
	var errs []error
	if c.Timing.DropCycle < 1 {
		errs = append(errs, fmt.Errorf("timing.drop_cycle must be positive, got %d", c.Timing.DropCycle))
	}
	if c.Timing.SettleEvery < 1 {
		errs = append(errs, fmt.Errorf("timing.settle_every must be positive, got %d", c.Timing.SettleEvery))
	}
	if c.Timing.MinDropCycle < 1 || c.Timing.MinDropCycle > c.Timing.DropCycle {
		errs = append(errs, fmt.Errorf("timing.min_drop_cycle must be in [1, %d], got %d",
			c.Timing.DropCycle, c.Timing.MinDropCycle))
	}
	if c.Scoring.PointsPerGarbage < 1 {
		errs = append(errs, fmt.Errorf("scoring.points_per_garbage must be positive, got %d", c.Scoring.PointsPerGarbage))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none",
			c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Drop speed added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
