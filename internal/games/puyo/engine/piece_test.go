package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPositionPanicsWhenDetached(t *testing.T) {
	assert.Panics(t, func() { NewPosition(C(0, 0), C(2, 0)) })
	assert.Panics(t, func() { NewPosition(C(0, 0), C(1, 1)) })
	assert.NotPanics(t, func() { NewPosition(C(0, 0), C(0, 1)) })
}

func TestRotateClockwise(t *testing.T) {
	p := NewPosition(C(2, 2), C(3, 2))
	want := []Direction{DirDown, DirLeft, DirUp, DirRight}
	for _, d := range want {
		p.Rotate()
		assert.Equal(t, d, p.Rotation())
		assert.Equal(t, C(2, 2), p.Pivot, "pivot never moves")
	}
}

func TestFlip(t *testing.T) {
	p := NewPosition(C(2, 2), C(2, 3))
	p.Flip()
	assert.Equal(t, C(2, 1), p.Wheel)
	p.Flip()
	assert.Equal(t, C(2, 3), p.Wheel)
}

func TestIsVertical(t *testing.T) {
	assert.True(t, NewPosition(C(1, 1), C(1, 2)).IsVertical())
	assert.False(t, NewPosition(C(1, 1), C(0, 1)).IsVertical())
}

func TestPositionMove(t *testing.T) {
	p := NewPosition(C(1, 1), C(1, 2))
	p.Move(DirRight)
	assert.Equal(t, NewPosition(C(2, 1), C(2, 2)), p)
	p.Move(DirNone)
	assert.Equal(t, NewPosition(C(2, 1), C(2, 2)), p)
}

func TestRandomColorsAvoidExcluded(t *testing.T) {
	rng := newSeqRand(0, 1, 2, 3, 2, 1)
	for range 20 {
		c := RandomColors(rng, Blue)
		assert.NotEqual(t, Blue, c.Pivot)
		assert.NotEqual(t, Blue, c.Wheel)
	}
}
