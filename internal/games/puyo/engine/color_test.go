package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNormal(t *testing.T) {
	assert.False(t, Empty.IsNormal())
	assert.False(t, Garbage.IsNormal())
	for _, c := range normalColors {
		assert.True(t, c.IsNormal(), c.String())
	}
}

func TestAnyColorCoversPalette(t *testing.T) {
	rng := newSeqRand(0, 1, 2, 3, 4)
	seen := map[Color]bool{}
	for range NumNormalColors {
		seen[AnyColor(rng)] = true
	}
	assert.Len(t, seen, NumNormalColors)
}

func TestExcludeColorNeverReturnsExcluded(t *testing.T) {
	for _, excluded := range normalColors {
		seen := map[Color]bool{}
		for v := range NumNormalColors - 1 {
			c := ExcludeColor(newSeqRand(v), excluded)
			assert.NotEqual(t, excluded, c)
			assert.True(t, c.IsNormal())
			seen[c] = true
		}
		// every other color is reachable exactly once
		assert.Len(t, seen, NumNormalColors-1, "excluding %s", excluded)
	}
}

func TestExcludeColorWithNonPlayableColor(t *testing.T) {
	seen := map[Color]bool{}
	for v := range NumNormalColors - 1 {
		seen[ExcludeColor(newSeqRand(v), Empty)] = true
	}
	assert.Len(t, seen, NumNormalColors-1)
	assert.False(t, seen[Violet])
}

func TestParseColor(t *testing.T) {
	for _, c := range []Color{Empty, Garbage, Red, Green, Blue, Yellow, Violet} {
		got, ok := ParseColor(string(c.Char()))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseColor("x")
	assert.False(t, ok)
}
