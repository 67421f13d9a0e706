package engine

import "fmt"

// Pair is a two-cell piece: the pivot anchors it, the wheel turns around
// the pivot. It is instantiated over Color for piece contents and over
// Coord (through Position) for piece placement.
type Pair[T comparable] struct {
	Pivot T
	Wheel T
}

// Colors holds the contents of a piece.
type Colors = Pair[Color]

// RandomColors draws both halves of a piece, never producing excluded.
func RandomColors(rng Rand, excluded Color) Colors {
	return Colors{
		Pivot: ExcludeColor(rng, excluded),
		Wheel: ExcludeColor(rng, excluded),
	}
}

// Rotation is the amount of turning requested for the next tick.
type Rotation uint8

const (
	RotateNone Rotation = iota
	RotateSingle
	RotateDouble
)

// Position is the placement of a piece on the board. The wheel is always
// orthogonally adjacent to the pivot.
type Position struct {
	Pair[Coord]
}

// NewPosition builds a placement. It panics if the cells are not adjacent.
func NewPosition(pivot, wheel Coord) Position {
	if !pivot.IsAdjacent(wheel) {
		panic(fmt.Sprintf("engine: non-adjacent piece cells %s and %s", pivot, wheel))
	}
	return Position{Pair[Coord]{Pivot: pivot, Wheel: wheel}}
}

// IsVertical reports whether the wheel is directly above or below the pivot.
func (p Position) IsVertical() bool {
	return p.Pivot.X == p.Wheel.X
}

// Rotation returns the side of the pivot the wheel is on.
func (p Position) Rotation() Direction {
	return p.Pivot.DirectionTo(p.Wheel)
}

// Move translates both cells.
func (p *Position) Move(d Direction) {
	p.Pivot = p.Pivot.Step(d)
	p.Wheel = p.Wheel.Step(d)
}

// Rotate turns the wheel a quarter turn clockwise around the pivot:
// right -> down -> left -> up -> right.
func (p *Position) Rotate() {
	var next Direction
	switch p.Rotation() {
	case DirRight:
		next = DirDown
	case DirDown:
		next = DirLeft
	case DirLeft:
		next = DirUp
	case DirUp:
		next = DirRight
	default:
		panic(fmt.Sprintf("engine: cannot rotate detached wheel %s around %s", p.Wheel, p.Pivot))
	}
	p.Wheel = p.Pivot.Step(next)
}

// Flip moves the wheel to the opposite vertical side of the pivot.
func (p *Position) Flip() {
	if p.Wheel.Y < p.Pivot.Y {
		p.Wheel.Y = p.Pivot.Y + 1
	} else {
		p.Wheel.Y = p.Pivot.Y - 1
	}
}
