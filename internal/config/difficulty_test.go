package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropCycleProgression(t *testing.T) {
	cfg := DefaultPuyoConfig()
	dm := NewDifficultyManager(cfg.Difficulty)
	base, floor := cfg.Timing.DropCycle, cfg.Timing.MinDropCycle

	tests := []struct {
		name  string
		ticks uint64
		want  int
	}{
		{"start", 0, 51},
		{"halfway", 18000, 20}, // speed 2.5
		{"max", 36000, 13},     // speed 4, 12.75 rounds up
		{"past max", 100000, 13},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dm.DropCycle(base, floor, 0, tc.ticks))
		})
	}
}

func TestDropCycleRespectsFloor(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 10},
	})
	assert.Equal(t, 12, dm.DropCycle(51, 12, 0, 0))
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultPuyoConfig().Difficulty
	dm := NewDifficultyManager(cfg)
	dm.SetEnabled(false)

	require.False(t, dm.IsEnabled())
	assert.Equal(t, 51, dm.DropCycle(51, 12, 5000, 99999), "disabled progression keeps the base cycle")
}

func TestLevelFromScore(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
	})
	dm.SetInitialLevel(0.5)

	assert.Equal(t, 0.5, dm.Level(0, 0))
	assert.Equal(t, 0.75, dm.Level(500, 0))
	assert.Equal(t, 1.0, dm.Level(5000, 0))

	dm.SetInitialLevel(3)
	assert.Equal(t, 1.0, dm.Level(0, 0), "initial level clamps to 1")
}
