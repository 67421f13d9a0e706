package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// isolateXDG points the XDG config lookup at an empty temp directory.
func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parsePuyo(GetDefaultYAML("puyo"))
	require.NoError(t, err, "embedded default is invalid")
	assert.Equal(t, DefaultPuyoConfig(), cfg)
	assert.Nil(t, GetDefaultYAML("tetris"), "unknown game should have no default")
}

func TestLoadPuyoFallsBackToDefault(t *testing.T) {
	isolateXDG(t)

	cfg, err := LoadPuyo("")
	require.NoError(t, err)
	assert.Equal(t, 51, cfg.Timing.DropCycle)
	assert.Equal(t, 4, cfg.Timing.SettleEvery)
	assert.Equal(t, 70, cfg.Scoring.PointsPerGarbage)
}

func TestLoadPuyoCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "timing:\n  drop_cycle: 30\n")

	cfg, err := LoadPuyo(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Timing.DropCycle)
	// keys missing from the file keep their defaults
	assert.Equal(t, 4, cfg.Timing.SettleEvery)
	assert.Equal(t, 70, cfg.Scoring.PointsPerGarbage)
}

func TestLoadPuyoCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPuyo(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "missing custom file should fail")

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "timing: [1, 2\n")
	_, err = LoadPuyo(bad)
	assert.Error(t, err, "malformed YAML should fail")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "timing:\n  settle_every: 0\n")
	_, err = LoadPuyo(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settle_every")
}

func TestLoadPuyoFromXDG(t *testing.T) {
	dir := isolateXDG(t)
	writeFile(t, filepath.Join(dir, "tui-puyo", "puyo.yaml"), "scoring:\n  points_per_garbage: 35\n")

	cfg, err := LoadPuyo("")
	require.NoError(t, err)
	assert.Equal(t, 35, cfg.Scoring.PointsPerGarbage, "value should come from the XDG file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PuyoConfig)
		field  string
	}{
		{"drop cycle", func(c *PuyoConfig) { c.Timing.DropCycle = 0 }, "drop_cycle"},
		{"settle every", func(c *PuyoConfig) { c.Timing.SettleEvery = -1 }, "settle_every"},
		{"min drop cycle above base", func(c *PuyoConfig) { c.Timing.MinDropCycle = 60 }, "min_drop_cycle"},
		{"points per garbage", func(c *PuyoConfig) { c.Scoring.PointsPerGarbage = 0 }, "points_per_garbage"},
		{"progression type", func(c *PuyoConfig) { c.Difficulty.Progression.Type = "lines" }, "progression.type"},
	}

	require.NoError(t, DefaultPuyoConfig().Validate(), "default config should be valid")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPuyoConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, string(p))
	}

	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p, "empty preset should select normal")

	_, err = ParsePreset("insane")
	assert.Error(t, err, "unknown preset should fail")
}

func TestApplyPuyoPreset(t *testing.T) {
	cfg := DefaultPuyoConfig()
	ApplyPuyoPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)

	ApplyPuyoPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled, "fixed preset should disable progression")
}
