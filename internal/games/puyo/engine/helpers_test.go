package engine

// seqRand replays a fixed sequence of values, wrapping around.
type seqRand struct {
	vals []int
	i    int
}

func newSeqRand(vals ...int) *seqRand {
	if len(vals) == 0 {
		vals = []int{0}
	}
	return &seqRand{vals: vals}
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// newTestGame returns a game with default options and no piece in play.
func newTestGame() *Game {
	return New(newSeqRand(0, 1, 2, 3), DefaultOptions())
}

// control puts a piece under control at pos.
func control(g *Game, pos Position, colors Colors) {
	g.place(pos, colors)
	g.current = pos
	g.hasCurrent = true
}

// settleTick runs one step on which the slow phases are allowed to run.
func settleTick(g *Game) {
	g.tick = g.opts.SettleEvery - 1
	g.Step()
}

// dropTick runs one step on which the controlled piece falls a row.
func dropTick(g *Game) {
	g.tick = g.opts.DropCycle - 1
	g.Step()
}
