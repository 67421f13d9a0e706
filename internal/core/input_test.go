package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	var f InputFrame
	f.Set(ActionLeft)
	f.Set(ActionDown)
	f.Set(ActionLeft)

	assert.Equal(t, []Action{ActionLeft, ActionDown, ActionLeft}, f.Actions)
	assert.True(t, f.Has(ActionDown))
	assert.False(t, f.Has(ActionRotate))

	f.Clear()
	assert.True(t, f.Empty(), "Clear should empty the frame, got %v", f.Actions)
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame(ActionRotate)
	clone := f.Clone()
	clone.Set(ActionLeft)

	assert.Len(t, f.Actions, 1, "mutating the clone changed the original")
}

func TestMultiInputFrame(t *testing.T) {
	m := NewMultiInputFrame()
	m.Add(Player1, ActionLeft)
	m.Add(Player2, ActionRotate)
	m.Add(Player2, ActionDown)

	assert.Equal(t, []Action{ActionLeft}, m.Player1().Actions)
	assert.Equal(t, []Action{ActionRotate, ActionDown}, m.Player2().Actions)
	assert.True(t, m.Has(ActionRotate), "Has should look at every player")
	assert.False(t, m.Has(ActionPause))

	clone := m.Clone()
	m.Clear()
	assert.True(t, m.Player2().Empty(), "Clear should empty every player")
	assert.False(t, clone.Player2().Empty(), "Clone should survive Clear")

	var zero MultiInputFrame
	assert.True(t, zero.Player(Player1).Empty(), "zero value should report no input")
}

func TestPlayerIDString(t *testing.T) {
	assert.Equal(t, "P1", Player1.String())
	assert.Equal(t, "P2", Player2.String())
}
