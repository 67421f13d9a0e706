package engine

import (
	"fmt"
	"strings"

	"github.com/kamstrup/intmap"
)

// Board dimensions. The top row is reserved: pieces may occupy it but it
// is never scanned for clears.
const (
	BoardWidth  = 6
	BoardHeight = 13

	// MinGroupSize is the smallest same-colored region that clears.
	MinGroupSize = 4
)

// Board is the grid of cell colors, row 0 at the bottom. The zero value is
// an empty board. Board is a value type; copying it snapshots the grid.
type Board struct {
	cells [BoardHeight][BoardWidth]Color
}

// InBounds reports whether c lies on the board.
func InBounds(c Coord) bool {
	return c.X >= 0 && c.X < BoardWidth && c.Y >= 0 && c.Y < BoardHeight
}

// inScanArea reports whether c takes part in clear detection.
func inScanArea(c Coord) bool {
	return c.X >= 0 && c.X < BoardWidth && c.Y >= 0 && c.Y < BoardHeight-1
}

func index(c Coord) int {
	return c.Y*BoardWidth + c.X
}

func coordOf(i int) Coord {
	return Coord{X: i % BoardWidth, Y: i / BoardWidth}
}

// At returns the color at c. ok is false when c is off the board.
func (b Board) At(c Coord) (color Color, ok bool) {
	if !InBounds(c) {
		return Empty, false
	}
	return b.cells[c.Y][c.X], true
}

// Cell returns the color at column x, row y. It panics off the board.
func (b Board) Cell(x, y int) Color {
	return b.cells[y][x]
}

// IsEmpty reports whether c is on the board and holds nothing.
// Off-board cells count as occupied.
func (b Board) IsEmpty(c Coord) bool {
	color, ok := b.At(c)
	return ok && color == Empty
}

// Set stores color at c. It panics off the board.
func (b *Board) Set(c Coord, color Color) {
	b.Swap(c, color)
}

// Swap stores color at c and returns the previous content.
// It panics off the board.
func (b *Board) Swap(c Coord, color Color) Color {
	if !InBounds(c) {
		panic(fmt.Sprintf("engine: cell %s is off the board", c))
	}
	prev := b.cells[c.Y][c.X]
	b.cells[c.Y][c.X] = color
	return prev
}

// ApplyGravity pulls every floating cell down by one row. It reports
// whether anything moved. Repeated calls settle the board completely.
func (b *Board) ApplyGravity() bool {
	moved := false
	for y := 1; y < BoardHeight; y++ {
		row, above := &b.cells[y-1], &b.cells[y]
		for x := range row {
			if row[x] == Empty && above[x] != Empty {
				row[x], above[x] = above[x], Empty
				moved = true
			}
		}
	}
	return moved
}

// ClearGroups removes every same-colored region of at least MinGroupSize
// cells together with the garbage touching it, reporting each group to
// tracker. When anything cleared the scan is recorded as one chain cycle.
func (b *Board) ClearGroups(tracker *ChainTracker) bool {
	const area = BoardWidth * (BoardHeight - 1)
	unclearable := intmap.New[int, struct{}](area)
	queued := intmap.New[int, struct{}](area)
	region := intmap.New[int, struct{}](area)
	garbage := intmap.New[int, struct{}](area)
	pending := make([]Coord, 0, area)
	anyCleared := false

	for y := 0; y < BoardHeight-1; y++ {
		for x := 0; x < BoardWidth; x++ {
			start := C(x, y)
			if _, skip := unclearable.Get(index(start)); skip {
				continue
			}
			blob := b.cells[y][x]
			if !blob.IsNormal() {
				continue
			}

			queued.Clear()
			region.Clear()
			garbage.Clear()
			pending = append(pending[:0], start)
			queued.Put(index(start), struct{}{})

			for len(pending) > 0 {
				item := pending[len(pending)-1]
				pending = pending[:len(pending)-1]

				switch b.cells[item.Y][item.X] {
				case Garbage:
					garbage.Put(index(item), struct{}{})
					continue
				case blob:
				default:
					continue
				}
				region.Put(index(item), struct{}{})

				for _, d := range realDirections {
					next := item.Step(d)
					if !inScanArea(next) {
						continue
					}
					ni := index(next)
					if _, seen := queued.Get(ni); seen {
						continue
					}
					if _, skip := unclearable.Get(ni); skip {
						continue
					}
					queued.Put(ni, struct{}{})
					pending = append(pending, next)
				}
			}

			if region.Len() < MinGroupSize {
				region.ForEach(func(i int, _ struct{}) bool {
					unclearable.Put(i, struct{}{})
					return true
				})
				continue
			}

			anyCleared = true
			count := region.Len() + garbage.Len()
			wipe := func(i int, _ struct{}) bool {
				c := coordOf(i)
				b.cells[c.Y][c.X] = Empty
				return true
			}
			region.ForEach(wipe)
			garbage.ForEach(wipe)
			tracker.RecordGroup(blob, count)
		}
	}

	if anyCleared {
		tracker.EndCycle()
	}
	return anyCleared
}

// Settled reports whether no empty cell has a filled cell directly above it.
func (b Board) Settled() bool {
	for y := 1; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if b.cells[y-1][x] == Empty && b.cells[y][x] != Empty {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold color.
func (b Board) Count(color Color) int {
	n := 0
	for y := range b.cells {
		for _, c := range b.cells[y] {
			if c == color {
				n++
			}
		}
	}
	return n
}

// Fill sets every cell to color.
func (b *Board) Fill(color Color) {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = color
		}
	}
}

// ParseBoard builds a board from layout rows written top row first, one
// character per cell (see Color.Char). Fewer than BoardHeight rows are
// aligned to the bottom of the board.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > BoardHeight {
		return b, fmt.Errorf("engine: layout has %d rows, board has %d", len(rows), BoardHeight)
	}
	for i, row := range rows {
		y := len(rows) - 1 - i
		runes := []rune(row)
		if len(runes) != BoardWidth {
			return b, fmt.Errorf("engine: layout row %d has %d cells, want %d", i, len(runes), BoardWidth)
		}
		for x, r := range runes {
			color, ok := ParseColor(string(r))
			if !ok {
				return b, fmt.Errorf("engine: layout row %d: unknown cell %q", i, r)
			}
			b.cells[y][x] = color
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on a malformed layout.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders the board top row first in layout notation.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((BoardWidth + 1) * BoardHeight)
	for y := BoardHeight - 1; y >= 0; y-- {
		for x := 0; x < BoardWidth; x++ {
			sb.WriteRune(b.cells[y][x].Char())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
