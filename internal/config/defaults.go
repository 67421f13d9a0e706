package config

import (
	_ "embed"
)

//go:embed defaults/puyo.yaml
var defaultPuyoYAML []byte

// DefaultPuyoConfig returns the classic timing and scoring.
func DefaultPuyoConfig() PuyoConfig {
	return PuyoConfig{
		Timing: PuyoTiming{
			DropCycle:    51,
			SettleEvery:  4,
			MinDropCycle: 12,
		},
		Scoring: PuyoScoring{
			PointsPerGarbage: 70,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "puyo", "puyo_solo":
		return defaultPuyoYAML
	default:
		return nil
	}
}
