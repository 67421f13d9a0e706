package puyo

// Snapshot captures the complete visible state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Boards  []string // layout notation, one entry per board
	Scores  []int
	Pending []int
	Over    bool
	Paused  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Over:   g.over(),
		Paused: g.paused,
	}
	if g.match != nil {
		snap.Tick = g.match.Ticks()
	} else if len(g.seats) > 0 {
		snap.Tick = g.seats[0].game.Ticks()
	}
	for _, s := range g.seats {
		board := s.game.Board()
		snap.Boards = append(snap.Boards, board.String())
		snap.Scores = append(snap.Scores, s.game.Score())
		snap.Pending = append(snap.Pending, s.game.PendingGarbage())
	}
	return snap
}
