package engine

import "fmt"

// Default tuning parameters.
const (
	DefaultDropCycle   = 51
	DefaultSettleEvery = 4
)

// SpawnCoord is where a new piece's pivot appears; its wheel sits above.
var SpawnCoord = C(3, BoardHeight-2)

// garbageColumns is the order incoming garbage visits the columns.
var garbageColumns = [BoardWidth]int{0, 3, 2, 5, 1, 4}

// Options are the tuning parameters of a Game.
type Options struct {
	// DropCycle is the number of ticks between two one-row drops of the
	// controlled piece.
	DropCycle int

	// SettleEvery runs gravity, clearing and garbage only on ticks that
	// are a multiple of it.
	SettleEvery int

	// PointsPerGarbage is the score worth one garbage unit.
	PointsPerGarbage int
}

// DefaultOptions returns the classic timing and scoring.
func DefaultOptions() Options {
	return Options{
		DropCycle:        DefaultDropCycle,
		SettleEvery:      DefaultSettleEvery,
		PointsPerGarbage: DefaultPointsPerGarbage,
	}
}

func (o Options) normalized() Options {
	if o.DropCycle < 1 {
		o.DropCycle = DefaultDropCycle
	}
	if o.SettleEvery < 1 {
		o.SettleEvery = DefaultSettleEvery
	}
	if o.PointsPerGarbage < 1 {
		o.PointsPerGarbage = DefaultPointsPerGarbage
	}
	return o
}

// Game is one player's board and the state machine that advances it.
// It is not safe for concurrent use; a single loop owns it.
type Game struct {
	rng  Rand
	opts Options

	over  bool
	tick  int    // sub-tick counter in [0, DropCycle)
	ticks uint64 // steps taken while running

	board    Board
	front    Board // grid as last acknowledged by the renderer
	excluded Color

	current    Position
	hasCurrent bool
	next       Colors

	motion Direction
	rotate Rotation

	chain    *ChainTracker
	score    int
	maxChain int

	incoming      int
	outgoing      int
	garbageCursor int

	garbageReceived int
	garbagePlaced   int
	garbageOffset   int
}

// New creates a game drawing its colors from rng.
func New(rng Rand, opts Options) *Game {
	opts = opts.normalized()
	excluded := AnyColor(rng)
	g := &Game{
		rng:      rng,
		opts:     opts,
		tick:     opts.DropCycle - 1,
		excluded: excluded,
		next:     RandomColors(rng, excluded),
		chain:    NewChainTracker(opts.PointsPerGarbage),
	}
	g.front.Fill(excluded)
	return g
}

// IsOver reports whether the board has topped out.
func (g *Game) IsOver() bool {
	return g.over
}

// NextPiece returns the colors of the upcoming piece as (pivot, wheel).
func (g *Game) NextPiece() (Color, Color) {
	return g.next.Pivot, g.next.Wheel
}

// Current returns the controlled piece placement, if any.
func (g *Game) Current() (Position, bool) {
	return g.current, g.hasCurrent
}

// Board returns a copy of the grid.
func (g *Game) Board() Board {
	return g.board
}

// ExcludedColor returns the color reserved for the initial render
// snapshot. No piece of this game ever uses it.
func (g *Game) ExcludedColor() Color {
	return g.excluded
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	return g.score
}

// LastChain returns the chain length of the most recently scored combo.
func (g *Game) LastChain() int {
	return g.chain.LastChain()
}

// MaxChain returns the longest chain scored so far.
func (g *Game) MaxChain() int {
	return g.maxChain
}

// Ticks returns the number of steps taken before the game ended.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// DropCycle returns the current drop period in ticks.
func (g *Game) DropCycle() int {
	return g.opts.DropCycle
}

// SetDropCycle changes the drop period. Values below 1 are raised to 1.
func (g *Game) SetDropCycle(n int) {
	g.opts.DropCycle = max(n, 1)
}

// PendingGarbage returns the incoming garbage not yet on the board.
func (g *Game) PendingGarbage() int {
	return g.incoming
}

// AddGarbage queues amount incoming garbage units.
func (g *Game) AddGarbage(amount int) {
	if amount <= 0 {
		return
	}
	g.incoming += amount
	g.garbageReceived += amount
}

// TakeGarbage drains the garbage this board has produced for its opponent.
func (g *Game) TakeGarbage() int {
	out := g.outgoing
	g.outgoing = 0
	return out
}

// GarbageReceived returns the total ever passed to AddGarbage.
func (g *Game) GarbageReceived() int {
	return g.garbageReceived
}

// GarbagePlaced returns the garbage units dropped onto the board.
func (g *Game) GarbagePlaced() int {
	return g.garbagePlaced
}

// GarbageOffset returns the incoming units cancelled by this board's own
// clears.
func (g *Game) GarbageOffset() int {
	return g.garbageOffset
}

// QueueMotion buffers a directional intent for the next tick, merging it
// with what is already buffered.
func (g *Game) QueueMotion(d Direction) {
	g.motion = mergeMotion(g.motion, d)
}

// QueueRotate buffers a rotation press. A second press before the next
// tick asks for a half turn. Presses without a controlled piece are
// ignored.
func (g *Game) QueueRotate() {
	if !g.hasCurrent {
		return
	}
	if g.rotate == RotateNone {
		g.rotate = RotateSingle
	} else {
		g.rotate = RotateDouble
	}
}

// mergeMotion combines a buffered motion with a new one. Up is never
// stored: it only releases a buffered soft drop.
func mergeMotion(buffered, incoming Direction) Direction {
	switch {
	case buffered == DirUp:
		panic("engine: up motion cannot be buffered")
	case buffered == incoming:
		return buffered
	case buffered == DirDown && incoming == DirUp:
		return DirNone
	case incoming == DirUp:
		return buffered
	case buffered == DirNone:
		return incoming
	case incoming == DirNone:
		return buffered
	case incoming == DirDown:
		return buffered
	case buffered == DirDown:
		return incoming
	default:
		// left and right cancel out
		return DirNone
	}
}

// Step advances the game by one tick. It is a no-op once the game is over.
func (g *Game) Step() {
	if g.over {
		return
	}
	g.ticks++
	g.tick++
	if g.tick >= g.opts.DropCycle {
		g.tick = 0
	}

	if g.resolveMotion() || g.resolveRotation() || g.resolveDrop(g.tick == 0) {
		return
	}
	if g.tick%g.opts.SettleEvery != 0 {
		return
	}
	if g.board.ApplyGravity() || g.board.ClearGroups(g.chain) {
		return
	}
	g.applyScore()
	if g.spawnGarbage() {
		return
	}
	g.spawnPiece()
}

// lift takes the piece colors off the board.
func (g *Game) lift(pos Position) Colors {
	return Colors{
		Pivot: g.board.Swap(pos.Pivot, Empty),
		Wheel: g.board.Swap(pos.Wheel, Empty),
	}
}

func (g *Game) place(pos Position, colors Colors) {
	g.board.Set(pos.Pivot, colors.Pivot)
	g.board.Set(pos.Wheel, colors.Wheel)
}

// commit writes lifted colors at pos when both cells are free and makes
// it the controlled placement. Otherwise the colors go back where they
// were and commit reports false.
func (g *Game) commit(pos Position, colors Colors) bool {
	if !g.board.IsEmpty(pos.Pivot) || !g.board.IsEmpty(pos.Wheel) {
		g.place(g.current, colors)
		return false
	}
	g.place(pos, colors)
	g.current = pos
	return true
}

func (g *Game) resolveMotion() bool {
	if g.motion == DirNone {
		return false
	}
	motion := g.motion
	g.motion = DirNone
	if !g.hasCurrent {
		return false
	}

	pos := g.current
	colors := g.lift(pos)
	pos.Move(motion)
	g.commit(pos, colors)
	return true
}

func (g *Game) resolveRotation() bool {
	if g.rotate == RotateNone {
		return false
	}
	rotation := g.rotate
	g.rotate = RotateNone
	if !g.hasCurrent {
		return false
	}

	pos := g.current
	colors := g.lift(pos)
	if rotation == RotateDouble && pos.IsVertical() {
		pos.Flip()
	} else {
		pos.Rotate()
	}

	switch {
	case g.board.IsEmpty(pos.Wheel):
		// free rotation
	case pos.IsVertical():
		// floor kick
		pos.Move(DirUp)
	default:
		// wall kick away from the wheel
		pos.Move(pos.Rotation().Opposite())
	}
	g.commit(pos, colors)
	return true
}

func (g *Game) resolveDrop(full bool) bool {
	if !g.hasCurrent {
		return false
	}
	if !full {
		return true
	}

	pos := g.current
	colors := g.lift(pos)
	pos.Move(DirDown)
	if !g.commit(pos, colors) {
		// locked in place
		g.hasCurrent = false
	}
	return true
}

// applyScore converts a finished combo into garbage, cancelling incoming
// garbage before sending any to the opponent.
func (g *Game) applyScore() {
	if !g.chain.Pending() {
		return
	}
	garbage := g.chain.ConvertToGarbage()
	g.score += g.chain.LastScore()
	g.maxChain = max(g.maxChain, g.chain.LastChain())

	if g.incoming >= garbage {
		g.incoming -= garbage
		g.garbageOffset += garbage
		return
	}
	g.garbageOffset += g.incoming
	g.outgoing += garbage - g.incoming
	g.incoming = 0
}

// spawnGarbage drops pending garbage into the top of the columns, one
// unit per column visit. A call gives up after BoardWidth visits have
// found a column without room.
func (g *Game) spawnGarbage() bool {
	placed := false
	full := 0
	for g.incoming > 0 && full < BoardWidth {
		x := garbageColumns[g.garbageCursor]
		g.garbageCursor = (g.garbageCursor + 1) % len(garbageColumns)

		y := BoardHeight - 1
	scan:
		for ; y >= 0; y-- {
			switch g.board.cells[y][x] {
			case Garbage:
			case Empty:
				g.board.cells[y][x] = Garbage
				g.incoming--
				g.garbagePlaced++
				placed = true
				break scan
			default:
				full++
				break scan
			}
		}
		if y < 0 {
			// column is garbage all the way down
			full++
		}
	}
	return placed
}

func (g *Game) spawnPiece() {
	if g.hasCurrent {
		return
	}
	if !g.board.IsEmpty(SpawnCoord) {
		g.over = true
		return
	}
	colors := g.next
	g.next = RandomColors(g.rng, g.excluded)
	pos := NewPosition(SpawnCoord, SpawnCoord.Step(DirUp))
	g.place(pos, colors)
	g.current = pos
	g.hasCurrent = true
}

// String returns a short description of the game state for debugging.
func (g *Game) String() string {
	return fmt.Sprintf("tick=%d over=%v score=%d incoming=%d outgoing=%d piece=%v",
		g.tick, g.over, g.score, g.incoming, g.outgoing, g.hasCurrent)
}
