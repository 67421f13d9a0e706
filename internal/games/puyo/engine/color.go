package engine

import "strings"

// Color is the content of a board cell or a piece slot.
type Color uint8

const (
	Empty Color = iota
	Garbage
	Red
	Green
	Blue
	Yellow
	Violet
)

// normalColors is the playable palette, in index order.
var normalColors = [...]Color{Red, Green, Blue, Yellow, Violet}

// NumNormalColors is the size of the playable palette.
const NumNormalColors = len(normalColors)

// Rand is the random source the engine draws colors from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// AnyColor returns a uniformly chosen playable color.
func AnyColor(rng Rand) Color {
	return normalColors[rng.Intn(NumNormalColors)]
}

// ExcludeColor returns a uniformly chosen playable color other than
// exclude. When exclude is not playable the choice is restricted to the
// first NumNormalColors-1 palette entries.
func ExcludeColor(rng Rand, exclude Color) Color {
	choice := rng.Intn(NumNormalColors - 1)
	if xi := paletteIndex(exclude); xi >= 0 && choice >= xi {
		choice++
	}
	return normalColors[choice]
}

// paletteIndex returns the index of c in the playable palette, or -1.
func paletteIndex(c Color) int {
	for i, n := range normalColors {
		if n == c {
			return i
		}
	}
	return -1
}

// IsNormal reports whether c is one of the playable colors.
func (c Color) IsNormal() bool {
	return c != Empty && c != Garbage && c <= Violet
}

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Garbage:
		return "garbage"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Violet:
		return "violet"
	default:
		return "unknown"
	}
}

// Char returns the single character used by board layouts.
func (c Color) Char() rune {
	switch c {
	case Empty:
		return '.'
	case Garbage:
		return '#'
	case Red:
		return 'R'
	case Green:
		return 'G'
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Violet:
		return 'V'
	default:
		return '?'
	}
}

// ParseColor converts a name or layout character to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "empty", ".":
		return Empty, true
	case "garbage", "#":
		return Garbage, true
	case "red", "r":
		return Red, true
	case "green", "g":
		return Green, true
	case "blue", "b":
		return Blue, true
	case "yellow", "y":
		return Yellow, true
	case "violet", "v":
		return Violet, true
	default:
		return Empty, false
	}
}
