package engine

import "math/bits"

// DefaultPointsPerGarbage is the score worth one garbage unit.
const DefaultPointsPerGarbage = 70

const (
	maxBonus       = 999
	maxChainPower  = 999
	maxGroupBonus  = 10
	chainPowerBase = 8
)

// colorBonus is indexed by the number of distinct colors cleared.
var colorBonus = [NumNormalColors + 1]int{0, 0, 3, 6, 12, 24}

// ChainTracker accumulates the clears of one combo and turns them into
// score and garbage. Its state survives across ticks so that a cascade
// is scored as a whole once it settles.
type ChainTracker struct {
	pointsPerGarbage int

	totalCleared int
	cycles       int
	colors       uint8 // bit per palette index
	groupBonus   int
	leftover     int

	lastScore int
	lastChain int
}

// NewChainTracker creates a tracker. Non-positive pointsPerGarbage falls
// back to DefaultPointsPerGarbage.
func NewChainTracker(pointsPerGarbage int) *ChainTracker {
	if pointsPerGarbage <= 0 {
		pointsPerGarbage = DefaultPointsPerGarbage
	}
	return &ChainTracker{pointsPerGarbage: pointsPerGarbage}
}

// RecordGroup registers one cleared group of count cells.
func (c *ChainTracker) RecordGroup(color Color, count int) {
	c.totalCleared += count
	if xi := paletteIndex(color); xi >= 0 {
		c.colors |= 1 << xi
	}
	c.groupBonus += groupBonus(count)
}

// EndCycle marks the end of a clear scan that cleared at least one group.
func (c *ChainTracker) EndCycle() {
	c.cycles++
}

// Pending reports whether there are cleared cells awaiting conversion.
func (c *ChainTracker) Pending() bool {
	return c.totalCleared > 0
}

// ConvertToGarbage scores the accumulated combo and returns the number of
// whole garbage units it is worth. The fractional remainder is carried
// into the next conversion. With nothing cleared it returns 0 and leaves
// the tracker untouched.
func (c *ChainTracker) ConvertToGarbage() int {
	if c.totalCleared == 0 {
		return 0
	}
	score := c.score()
	total := score + c.leftover
	garbage := total / c.pointsPerGarbage

	c.lastScore = score
	c.lastChain = c.cycles
	c.leftover = total % c.pointsPerGarbage
	c.totalCleared = 0
	c.cycles = 0
	c.colors = 0
	c.groupBonus = 0
	return garbage
}

// LastScore returns the points of the most recent conversion.
func (c *ChainTracker) LastScore() int {
	return c.lastScore
}

// LastChain returns the chain length of the most recent conversion.
func (c *ChainTracker) LastChain() int {
	return c.lastChain
}

// Leftover returns the score carried toward the next garbage unit.
func (c *ChainTracker) Leftover() int {
	return c.leftover
}

func (c *ChainTracker) score() int {
	bonus := chainPower(c.cycles) + colorBonus[bits.OnesCount8(c.colors)] + c.groupBonus
	bonus = min(max(bonus, 1), maxBonus)
	return 10 * c.totalCleared * bonus
}

func chainPower(cycles int) int {
	switch {
	case cycles <= 1:
		return 0
	case cycles >= 9:
		return maxChainPower
	default:
		return chainPowerBase << (cycles - 2)
	}
}

func groupBonus(count int) int {
	switch {
	case count < 5:
		return 0
	case count >= 11:
		return maxGroupBonus
	default:
		return count - 3
	}
}
