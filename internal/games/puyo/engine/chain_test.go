package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertSingleGroup(t *testing.T) {
	c := NewChainTracker(DefaultPointsPerGarbage)
	c.RecordGroup(Red, 4)
	c.EndCycle()

	assert.Equal(t, 0, c.ConvertToGarbage())
	assert.Equal(t, 40, c.LastScore())
	assert.Equal(t, 1, c.LastChain())
	assert.Equal(t, 40, c.Leftover())
	assert.False(t, c.Pending())
}

func TestConvertCarriesRemainder(t *testing.T) {
	c := NewChainTracker(DefaultPointsPerGarbage)
	for range 2 {
		c.RecordGroup(Green, 4)
		c.EndCycle()
		c.ConvertToGarbage()
	}
	// 40 carried + 40 scored
	assert.Equal(t, 10, c.Leftover())

	c.RecordGroup(Green, 4)
	c.EndCycle()
	assert.Equal(t, 0, c.ConvertToGarbage())
	assert.Equal(t, 50, c.Leftover())
}

func TestConvertWithoutClearsIsNoop(t *testing.T) {
	c := NewChainTracker(DefaultPointsPerGarbage)
	c.RecordGroup(Red, 4)
	c.EndCycle()
	c.ConvertToGarbage()

	assert.Equal(t, 0, c.ConvertToGarbage())
	assert.Equal(t, 40, c.Leftover())
	assert.Equal(t, 40, c.LastScore())
}

func TestConvertFormula(t *testing.T) {
	type group struct {
		color Color
		count int
		cycle bool
	}
	tests := []struct {
		name     string
		groups   []group
		score    int
		garbage  int
		leftover int
	}{
		{
			name:   "two chain one color",
			groups: []group{{Red, 4, true}, {Red, 4, true}},
			// bonus 8
			score: 640, garbage: 9, leftover: 10,
		},
		{
			name:   "two chain two colors",
			groups: []group{{Red, 4, true}, {Blue, 4, true}},
			// bonus 8 + 3
			score: 880, garbage: 12, leftover: 40,
		},
		{
			name:   "big single group",
			groups: []group{{Yellow, 7, true}},
			// group bonus 4
			score: 280, garbage: 4, leftover: 0,
		},
		{
			name: "simultaneous groups in one cycle",
			groups: []group{
				{Red, 4, false}, {Green, 4, false}, {Blue, 4, false},
				{Yellow, 4, false}, {Violet, 4, true},
			},
			// color bonus 24
			score: 4800, garbage: 68, leftover: 40,
		},
		{
			name: "bonus clamps at 999",
			groups: []group{
				{Red, 4, true}, {Red, 4, true}, {Red, 4, true},
				{Red, 4, true}, {Red, 4, true}, {Red, 4, true},
				{Red, 4, true}, {Red, 4, true}, {Red, 12, true},
			},
			score: 10 * 44 * 999, garbage: 6279, leftover: 30,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewChainTracker(DefaultPointsPerGarbage)
			for _, g := range tc.groups {
				c.RecordGroup(g.color, g.count)
				if g.cycle {
					c.EndCycle()
				}
			}
			assert.Equal(t, tc.garbage, c.ConvertToGarbage())
			assert.Equal(t, tc.score, c.LastScore())
			assert.Equal(t, tc.leftover, c.Leftover())
		})
	}
}

func TestChainPower(t *testing.T) {
	want := map[int]int{0: 0, 1: 0, 2: 8, 3: 16, 4: 32, 5: 64, 8: 512, 9: 999, 15: 999}
	for cycles, power := range want {
		assert.Equal(t, power, chainPower(cycles), "cycles=%d", cycles)
	}
}

func TestGroupBonus(t *testing.T) {
	want := map[int]int{4: 0, 5: 2, 6: 3, 10: 7, 11: 10, 30: 10}
	for count, bonus := range want {
		assert.Equal(t, bonus, groupBonus(count), "count=%d", count)
	}
}

func TestCustomPointsPerGarbage(t *testing.T) {
	c := NewChainTracker(10)
	c.RecordGroup(Red, 4)
	c.EndCycle()
	assert.Equal(t, 4, c.ConvertToGarbage())
	assert.Equal(t, 0, c.Leftover())

	assert.Equal(t, DefaultPointsPerGarbage, NewChainTracker(0).pointsPerGarbage)
}
