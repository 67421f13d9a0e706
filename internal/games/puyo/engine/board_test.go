package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBoard(rng *rand.Rand, density float64) Board {
	var b Board
	palette := []Color{Garbage, Red, Green, Blue, Yellow, Violet}
	for y := range BoardHeight {
		for x := range BoardWidth {
			if rng.Float64() < density {
				b.Set(C(x, y), palette[rng.Intn(len(palette))])
			}
		}
	}
	return b
}

func colorCounts(b *Board) map[Color]int {
	counts := map[Color]int{}
	for _, c := range []Color{Garbage, Red, Green, Blue, Yellow, Violet} {
		counts[c] = b.Count(c)
	}
	return counts
}

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(
		"R.....",
		"#GBYV.",
	)
	require.NoError(t, err)
	assert.Equal(t, Red, b.Cell(0, 1))
	assert.Equal(t, Garbage, b.Cell(0, 0))
	assert.Equal(t, Violet, b.Cell(4, 0))
	assert.Equal(t, Empty, b.Cell(5, 12))

	_, err = ParseBoard("RRR")
	assert.Error(t, err)
	_, err = ParseBoard("RRRRRX")
	assert.Error(t, err)
	rows := make([]string, BoardHeight+1)
	for i := range rows {
		rows[i] = "......"
	}
	_, err = ParseBoard(rows...)
	assert.Error(t, err)
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := randomBoard(rand.New(rand.NewSource(7)), 0.5)
	parsed, err := ParseBoard(strings.Split(b.String(), "\n")...)
	require.NoError(t, err)
	assert.Equal(t, b, parsed)
}

func TestOffBoardCellsAreOccupied(t *testing.T) {
	var b Board
	assert.True(t, b.IsEmpty(C(0, 0)))
	assert.False(t, b.IsEmpty(C(-1, 0)))
	assert.False(t, b.IsEmpty(C(BoardWidth, 0)))
	assert.False(t, b.IsEmpty(C(0, BoardHeight)))
	assert.Panics(t, func() { b.Set(C(0, -1), Red) })

	_, ok := b.At(C(0, -1))
	assert.False(t, ok)
}

func TestGravityDropsOneRowPerCall(t *testing.T) {
	b := MustParseBoard(
		"R.....",
		"......",
		"......",
	)
	require.True(t, b.ApplyGravity())
	assert.Equal(t, Red, b.Cell(0, 1))
	require.True(t, b.ApplyGravity())
	assert.Equal(t, Red, b.Cell(0, 0))
	assert.False(t, b.ApplyGravity())
}

func TestGravityReachesFixedPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for range 200 {
		b := randomBoard(rng, 0.4)
		before := colorCounts(&b)

		for i := 0; b.ApplyGravity(); i++ {
			require.Less(t, i, BoardHeight, "gravity did not settle")
		}
		assert.True(t, b.Settled())
		assert.False(t, b.ApplyGravity())
		assert.Equal(t, before, colorCounts(&b))
	}
}

func TestClearSquare(t *testing.T) {
	b := MustParseBoard(
		"RR....",
		"RR....",
	)
	tracker := NewChainTracker(DefaultPointsPerGarbage)

	require.True(t, b.ClearGroups(tracker))
	assert.Equal(t, Board{}, b)
	assert.Equal(t, 4, tracker.totalCleared)
	assert.Equal(t, 1, tracker.cycles)
	assert.Equal(t, 0, tracker.groupBonus)
}

func TestSmallGroupsStay(t *testing.T) {
	b := MustParseBoard(
		"R.....",
		"RR.GG.",
		"BBRGYY",
	)
	before := b
	tracker := NewChainTracker(DefaultPointsPerGarbage)

	assert.False(t, b.ClearGroups(tracker))
	assert.Equal(t, before, b)
	assert.False(t, tracker.Pending())
	assert.Equal(t, 0, tracker.cycles)
}

func TestClearAbsorbsAdjacentGarbage(t *testing.T) {
	b := MustParseBoard(
		"#.....",
		"R#....",
		"RRR#..",
		"###...",
	)
	tracker := NewChainTracker(DefaultPointsPerGarbage)

	require.True(t, b.ClearGroups(tracker))
	want := MustParseBoard(
		"......",
		"......",
		"......",
		"......",
	)
	assert.Equal(t, want, b, b.String())
	// 4 red + 6 garbage
	assert.Equal(t, 10, tracker.totalCleared)
	assert.Equal(t, groupBonus(10), tracker.groupBonus)
}

func TestGarbageDoesNotBridgeRegions(t *testing.T) {
	b := MustParseBoard(
		"RR#RR.",
		"......",
	)
	tracker := NewChainTracker(DefaultPointsPerGarbage)
	assert.False(t, b.ClearGroups(tracker))
	assert.Equal(t, 4, b.Count(Red))
	assert.Equal(t, 1, b.Count(Garbage))
}

func TestGarbageTwoAwayStays(t *testing.T) {
	b := MustParseBoard(
		"RRRR.#",
	)
	tracker := NewChainTracker(DefaultPointsPerGarbage)
	require.True(t, b.ClearGroups(tracker))
	assert.Equal(t, 1, b.Count(Garbage))
	assert.Equal(t, 4, tracker.totalCleared)
}

func TestTopRowNeverClears(t *testing.T) {
	var b Board
	for x := range 4 {
		b.Set(C(x, BoardHeight-1), Blue)
	}
	before := b
	tracker := NewChainTracker(DefaultPointsPerGarbage)
	assert.False(t, b.ClearGroups(tracker))
	assert.Equal(t, before, b)

	// a region reaching into the top row only counts its lower cells
	b = Board{}
	for y := BoardHeight - 4; y < BoardHeight; y++ {
		b.Set(C(0, y), Green)
	}
	assert.False(t, b.ClearGroups(tracker))
	b.Set(C(0, BoardHeight-5), Green)
	assert.True(t, b.ClearGroups(tracker))
	assert.Equal(t, Green, b.Cell(0, BoardHeight-1))
	assert.Equal(t, 1, b.Count(Green))
}

func TestSeveralGroupsOneCycle(t *testing.T) {
	b := MustParseBoard(
		"RRGG..",
		"RRGG..",
	)
	tracker := NewChainTracker(DefaultPointsPerGarbage)
	require.True(t, b.ClearGroups(tracker))
	assert.Equal(t, Board{}, b)
	assert.Equal(t, 8, tracker.totalCleared)
	assert.Equal(t, 1, tracker.cycles)
	assert.Equal(t, uint8(0b11), tracker.colors)
}

func TestClearIsIdempotentOnceSettled(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 100 {
		b := randomBoard(rng, 0.6)
		tracker := NewChainTracker(DefaultPointsPerGarbage)
		b.ClearGroups(tracker)
		after := b
		assert.False(t, b.ClearGroups(tracker), "second scan must find nothing")
		assert.Equal(t, after, b)
	}
}

func TestClearCountsMatchRemovedCells(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for range 100 {
		b := randomBoard(rng, 0.7)
		filled := BoardWidth*BoardHeight - b.Count(Empty)
		tracker := NewChainTracker(DefaultPointsPerGarbage)
		b.ClearGroups(tracker)
		removed := filled - (BoardWidth*BoardHeight - b.Count(Empty))
		assert.Equal(t, removed, tracker.totalCleared)
	}
}
