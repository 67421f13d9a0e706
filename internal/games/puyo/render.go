package puyo

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

// Layout, in screen characters.
const (
	cellW     = 2
	boardW    = engine.BoardWidth*cellW + 2
	boardH    = engine.BoardHeight + 2
	boardGap  = 6
	boardTop  = 2
	infoLines = 4
	minHeight = boardTop + boardH + infoLines
)

var cellColors = map[engine.Color]core.Color{
	engine.Garbage: core.ColorGray,
	engine.Red:     core.ColorRed,
	engine.Green:   core.ColorGreen,
	engine.Blue:    core.ColorBlue,
	engine.Yellow:  core.ColorYellow,
	engine.Violet:  core.ColorMagenta,
}

var garbageRunes = map[engine.GarbageSymbol]rune{
	engine.SymbolSmall: '•',
	engine.SymbolLarge: '●',
	engine.SymbolRock:  '◆',
	engine.SymbolStar:  '★',
	engine.SymbolMoon:  '☾',
	engine.SymbolCrown: '♛',
	engine.SymbolComet: '☄',
}

// drawCell paints one board cell as two screen characters.
func drawCell(dst *core.Screen, x, y int, c engine.Color) {
	switch {
	case c == engine.Empty:
		dst.Set(x, y, ' ')
		dst.Set(x+1, y, ' ')
	case c == engine.Garbage:
		dst.SetColored(x, y, '#', cellColors[c])
		dst.SetColored(x+1, y, '#', cellColors[c])
	default:
		dst.SetColored(x, y, '(', cellColors[c])
		dst.SetColored(x+1, y, ')', cellColors[c])
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	width := boardW
	if len(g.seats) > 1 {
		width = len(g.seats)*boardW + (len(g.seats)-1)*boardGap
	}
	if dst.Width() < width || dst.Height() < minHeight {
		dst.DrawTextCenteredColored(dst.Height()/2, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", width, minHeight))
		return
	}

	dst.DrawTextCenteredColored(0, strings.ToUpper(g.title), core.ColorBrightWhite)

	left := (dst.Width() - width) / 2
	for i, s := range g.seats {
		g.drawSeat(dst, s, left+i*(boardW+boardGap), boardTop)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.over() {
		title, subtitle := g.resultText()
		drawCenteredMessage(dst, title, subtitle)
	}
}

func (g *Game) drawSeat(dst *core.Screen, s *seat, x, y int) {
	label := "YOU"
	if g.duel {
		label = s.id.String()
	}
	dst.DrawTextColored(x+1, y-1, label, core.ColorCyan)
	gx := x + len(label) + 2
	for i, sym := range engine.GarbageSymbols(s.game.PendingGarbage()) {
		dst.SetColored(gx+i, y-1, garbageRunes[sym], core.ColorOrange)
	}

	dst.DrawBox(core.NewRect(x, y, boardW, boardH), core.ColorWhite)
	for cy := range engine.BoardHeight {
		row := y + 1 + (engine.BoardHeight - 1 - cy)
		for cx := range engine.BoardWidth {
			drawCell(dst, x+1+cx*cellW, row, s.cache.Cell(cx, cy))
		}
	}

	info := y + boardH
	pivot, wheel := s.game.NextPiece()
	dst.DrawText(x+1, info, "NEXT")
	drawCell(dst, x+7, info, wheel)
	drawCell(dst, x+7, info+1, pivot)

	dst.DrawText(x+1, info+2, fmt.Sprintf("SCORE %d", s.game.Score()))
	switch {
	case s.bannerLeft > 0:
		dst.DrawTextColored(x+1, info+3, fmt.Sprintf("%d CHAIN!", s.banner), core.ColorYellow)
	case s.game.MaxChain() > 0:
		dst.DrawText(x+1, info+3, fmt.Sprintf("MAX %d", s.game.MaxChain()))
	}
}

// resultText describes a finished game for the overlay.
func (g *Game) resultText() (string, string) {
	if g.match == nil {
		return "GAME OVER", fmt.Sprintf("Score %d  |  Press R to restart", g.seats[0].game.Score())
	}
	one, two := g.seats[0].game.Score(), g.seats[1].game.Score()
	subtitle := fmt.Sprintf("%d - %d  |  Press R to restart", one, two)
	outcome := g.match.Outcome()
	switch {
	case outcome.Draw:
		return "DRAW!", subtitle
	case outcome.Winner == engine.SideOne:
		return "PLAYER 1 WINS!", subtitle
	default:
		return "PLAYER 2 WINS!", subtitle
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
