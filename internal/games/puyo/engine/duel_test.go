package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuelExchangesGarbage(t *testing.T) {
	d := NewDuel(newTestGame(), newTestGame())
	d.Player(SideOne).outgoing = 5
	d.Player(SideTwo).outgoing = 2

	d.Step()

	assert.Equal(t, 5, d.Player(SideTwo).PendingGarbage())
	assert.Equal(t, 2, d.Player(SideOne).PendingGarbage())
	assert.Equal(t, 0, d.Player(SideOne).TakeGarbage())
	assert.Equal(t, uint64(1), d.Ticks())
}

func TestDuelOutcome(t *testing.T) {
	d := NewDuel(newTestGame(), newTestGame())
	assert.Equal(t, Outcome{}, d.Outcome())
	assert.Nil(t, d.Player(SideNone))

	d.Player(SideOne).over = true
	assert.Equal(t, Outcome{Over: true, Winner: SideTwo}, d.Outcome())

	d.Player(SideTwo).over = true
	assert.Equal(t, Outcome{Over: true, Draw: true}, d.Outcome())
}

func TestDuelFreezesWhenOver(t *testing.T) {
	d := NewDuel(newTestGame(), newTestGame())
	d.Step()
	d.Player(SideTwo).over = true
	ticks := d.Player(SideOne).Ticks()

	d.Step()
	assert.Equal(t, uint64(1), d.Ticks())
	assert.Equal(t, ticks, d.Player(SideOne).Ticks())
	assert.Equal(t, SideOne, d.Outcome().Winner)
}
