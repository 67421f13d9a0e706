package engine

// Side identifies one of the two boards of a Duel.
type Side int

const (
	SideNone Side = iota
	SideOne
	SideTwo
)

// Outcome describes how a duel ended.
type Outcome struct {
	Over   bool
	Winner Side // SideNone while running or on a draw
	Draw   bool
}

// Duel pairs two games and routes each one's garbage to the other once
// per paired tick.
type Duel struct {
	one, two *Game
	ticks    uint64
}

// NewDuel pairs two independent games.
func NewDuel(one, two *Game) *Duel {
	return &Duel{one: one, two: two}
}

// Player returns the game on the given side, or nil.
func (d *Duel) Player(s Side) *Game {
	switch s {
	case SideOne:
		return d.one
	case SideTwo:
		return d.two
	default:
		return nil
	}
}

// Ticks returns the number of paired ticks played.
func (d *Duel) Ticks() uint64 {
	return d.ticks
}

// Step advances both boards one tick and exchanges their garbage. Once
// either board has topped out the duel is frozen.
func (d *Duel) Step() {
	if d.Outcome().Over {
		return
	}
	d.ticks++
	d.one.Step()
	d.two.Step()
	d.one.AddGarbage(d.two.TakeGarbage())
	d.two.AddGarbage(d.one.TakeGarbage())
}

// Outcome reports whether the duel has ended and who won.
func (d *Duel) Outcome() Outcome {
	oneOver, twoOver := d.one.IsOver(), d.two.IsOver()
	switch {
	case oneOver && twoOver:
		return Outcome{Over: true, Draw: true}
	case oneOver:
		return Outcome{Over: true, Winner: SideTwo}
	case twoOver:
		return Outcome{Over: true, Winner: SideOne}
	default:
		return Outcome{}
	}
}
