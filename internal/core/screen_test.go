package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			assert.Equal(t, ' ', s.Get(x, y), "new screen at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds should be silent
	assert.NotPanics(t, func() {
		s.Set(-1, 0, 'A')
		s.Set(100, 0, 'A')
		s.Set(0, -1, 'A')
		s.Set(0, 100, 'A')
	})

	// Out of bounds get should return space
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X')

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			assert.Equal(t, ' ', s.Get(x, y), "after Clear at (%d, %d)", x, y)
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, '#', s.Get(x, y), "after Fill at (%d, %d)", x, y)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		assert.Equal(t, ch, s.Get(2+i, 1), "DrawText at (%d, 1)", 2+i)
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, '#', s.Get(x, y), "DrawRect at (%d, %d)", x, y)
		}
	}

	// Check outside is still space
	assert.Equal(t, ' ', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	// Check corners
	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))
	assert.Equal(t, ColorCyan, s.GetCell(1, 1).Color, "box should carry its color")

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1), "top edge at x=%d", x)
		assert.Equal(t, '─', s.Get(x, 4), "bottom edge at x=%d", x)
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y), "left edge at y=%d", y)
		assert.Equal(t, '│', s.Get(5, y), "right edge at y=%d", y)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, "Hello   ", s.Row(0))

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	assert.Regexp(t, "^Hello", s.Row(0))
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	assert.Equal(t, "Test      ", row)
	assert.Len(t, row, 10)

	// Out of bounds row
	assert.Equal(t, "          ", s.Row(-1))
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(2, 1, '(', ColorRed)

	assert.Equal(t, Cell{Rune: '(', Color: ColorRed}, s.GetCell(2, 1))
	assert.Equal(t, ColorDefault, s.GetCell(3, 1).Color, "untouched cells keep the default color")
	assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(-1, 0))

	s.DrawTextColored(0, 0, "P1", ColorYellow)
	assert.Equal(t, ColorYellow, s.GetCell(1, 0).Color, "DrawTextColored should color every rune")

	s.Clear()
	assert.Equal(t, ColorDefault, s.GetCell(2, 1).Color, "Clear should reset colors")
}

func TestScreenCenteredTextCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "★★")
	assert.Equal(t, '★', s.Get(4, 0), s.Row(0))
	assert.Equal(t, '★', s.Get(5, 0), s.Row(0))
}
