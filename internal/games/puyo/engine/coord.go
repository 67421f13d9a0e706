// Package engine implements the falling two-cell puzzle simulation: piece
// kinematics, gravity, chain clearing, scoring and the garbage exchange
// between two boards.
//
// The package is pure. It performs no I/O, never sleeps and owns no
// goroutines; an external loop drives it one tick at a time.
package engine

import "fmt"

// Direction is a unit motion on the board. DirNone means no motion.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// realDirections lists every direction except DirNone.
var realDirections = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// RealDirections returns the four motions that actually move a coordinate.
func RealDirections() [4]Direction {
	return realDirections
}

// Opposite returns the reverse motion. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Coord is a cell position. X grows to the right, Y grows upward and
// row 0 is the bottom of the board.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the coordinate one cell away in the given direction.
// DirNone returns c unchanged.
func (c Coord) Step(d Direction) Coord {
	switch d {
	case DirLeft:
		return Coord{X: c.X - 1, Y: c.Y}
	case DirRight:
		return Coord{X: c.X + 1, Y: c.Y}
	case DirUp:
		return Coord{X: c.X, Y: c.Y + 1}
	case DirDown:
		return Coord{X: c.X, Y: c.Y - 1}
	default:
		return c
	}
}

// IsAdjacent reports whether other is one of the four orthogonal
// neighbours of c.
func (c Coord) IsAdjacent(other Coord) bool {
	dx := abs(other.X - c.X)
	dy := abs(other.Y - c.Y)
	return dx+dy == 1
}

// DirectionTo returns the motion that takes c onto other. Non-adjacent
// pairs yield DirNone. An offset of (0,+1) is DirUp and (0,-1) is DirDown;
// the two are never folded into the same direction.
func (c Coord) DirectionTo(other Coord) Direction {
	switch (Coord{X: other.X - c.X, Y: other.Y - c.Y}) {
	case Coord{X: -1, Y: 0}:
		return DirLeft
	case Coord{X: 1, Y: 0}:
		return DirRight
	case Coord{X: 0, Y: 1}:
		return DirUp
	case Coord{X: 0, Y: -1}:
		return DirDown
	default:
		return DirNone
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
