package engine

// RenderOp is the kind of a render command.
type RenderOp uint8

const (
	// OpGoto moves the paint cursor to At.
	OpGoto RenderOp = iota
	// OpPaint draws Color at the cursor and moves it one cell right.
	OpPaint
)

// RenderCommand is one step of a board redraw.
type RenderCommand struct {
	Op    RenderOp
	At    Coord
	Color Color
}

// gotoThreshold is the longest run of unchanged cells repainted instead
// of jumped over.
const gotoThreshold = 2

// Diff returns the commands that turn a display showing front into one
// showing back. Rows are visited top first, cells left to right.
func Diff(front, back *Board) []RenderCommand {
	var cmds []RenderCommand
	cursor, hasCursor := Coord{}, false

	for y := BoardHeight - 1; y >= 0; y-- {
		for x := 0; x < BoardWidth; x++ {
			if front.cells[y][x] == back.cells[y][x] {
				continue
			}
			if hasCursor && cursor.Y == y && x-cursor.X <= gotoThreshold {
				for ; cursor.X < x; cursor.X++ {
					cmds = append(cmds, RenderCommand{Op: OpPaint, Color: back.cells[y][cursor.X]})
				}
			} else {
				cmds = append(cmds, RenderCommand{Op: OpGoto, At: C(x, y)})
			}
			cmds = append(cmds, RenderCommand{Op: OpPaint, Color: back.cells[y][x]})
			cursor, hasCursor = C(x+1, y), true
		}
	}
	return cmds
}

// Apply replays render commands onto b. Paints past the end of a row or
// before any Goto are dropped.
func (b *Board) Apply(cmds []RenderCommand) {
	cursor, hasCursor := Coord{}, false
	for _, cmd := range cmds {
		switch cmd.Op {
		case OpGoto:
			cursor, hasCursor = cmd.At, true
		case OpPaint:
			if hasCursor && InBounds(cursor) {
				b.cells[cursor.Y][cursor.X] = cmd.Color
			}
			cursor.X++
		}
	}
}

// Front returns the grid as last acknowledged with CommitRender. Before
// the first commit every cell holds ExcludedColor, so the first diff
// repaints the whole board.
func (g *Game) Front() Board {
	return g.front
}

// RenderCommands returns the redraw needed since the last CommitRender.
func (g *Game) RenderCommands() []RenderCommand {
	return Diff(&g.front, &g.board)
}

// CommitRender acknowledges the current grid as displayed.
func (g *Game) CommitRender() {
	g.front = g.board
}

// garbageTiers maps pending garbage to HUD symbols, largest first.
var garbageTiers = []struct {
	units  int
	symbol GarbageSymbol
}{
	{1440, SymbolComet},
	{720, SymbolCrown},
	{360, SymbolMoon},
	{180, SymbolStar},
	{30, SymbolRock},
	{6, SymbolLarge},
	{1, SymbolSmall},
}

// GarbageSymbol is one icon of the pending-garbage indicator.
type GarbageSymbol uint8

const (
	SymbolSmall GarbageSymbol = iota
	SymbolLarge
	SymbolRock
	SymbolStar
	SymbolMoon
	SymbolCrown
	SymbolComet
)

// GarbageSymbols decomposes a pending garbage count into at most
// BoardWidth icons, largest first.
func GarbageSymbols(pending int) []GarbageSymbol {
	var out []GarbageSymbol
	tier := 0
	for len(out) < BoardWidth && pending > 0 {
		t := garbageTiers[tier]
		if pending >= t.units {
			pending -= t.units
			out = append(out, t.symbol)
		} else {
			tier++
		}
	}
	return out
}
