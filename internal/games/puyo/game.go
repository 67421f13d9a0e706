// Package puyo adapts the puzzle engine to the arcade platform: a two-player
// duel on one keyboard and a single-board practice mode.
package puyo

import (
	"math/rand"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

// Mode IDs used by the registry and score storage.
const (
	DuelID = "puyo"
	SoloID = "puyo_solo"
)

// bannerTicks is how long a chain announcement stays on screen.
const bannerTicks = 90

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own difficulty settings.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// seat is one board together with what the screen currently shows of it.
type seat struct {
	id   core.PlayerID
	game *engine.Game

	cache      engine.Board // updated only through render commands
	shownScore int
	banner     int // chain length being announced
	bannerLeft int
}

// sync replays the engine's pending render commands into the cache.
func (s *seat) sync() {
	s.cache.Apply(s.game.RenderCommands())
	s.game.CommitRender()

	if score := s.game.Score(); score != s.shownScore {
		s.shownScore = score
		if chain := s.game.LastChain(); chain > 1 {
			s.banner = chain
			s.bannerLeft = bannerTicks
		}
	}
	if s.bannerLeft > 0 {
		s.bannerLeft--
	}
}

// apply turns a player's presses into engine intents, in press order.
func (s *seat) apply(in core.InputFrame) {
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			s.game.QueueMotion(engine.DirLeft)
		case core.ActionRight:
			s.game.QueueMotion(engine.DirRight)
		case core.ActionDown:
			s.game.QueueMotion(engine.DirDown)
		case core.ActionUp:
			s.game.QueueMotion(engine.DirUp)
		case core.ActionRotate:
			s.game.QueueRotate()
		}
	}
}

// Game is a puzzle session with one or two boards.
type Game struct {
	id    string
	title string
	duel  bool

	runtime    core.RuntimeConfig
	cfg        config.PuyoConfig
	difficulty *config.DifficultyManager

	seats  []*seat
	match  *engine.Duel // nil in solo mode
	paused bool
}

// DuelGame is the two-player mode. It reports match results through the
// registry.Versus capability.
type DuelGame struct {
	*Game
}

// New creates the two-player duel.
func New() *DuelGame {
	return &DuelGame{Game: &Game{id: DuelID, title: "Puyo Duel", duel: true}}
}

// NewSolo creates the single-board mode.
func NewSolo() *Game {
	return &Game{id: SoloID, title: "Puyo Solo"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game. Every board draws from its own
// generator seeded with the same value, so both players get the same
// piece sequence.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPuyo(configPath)
	if err != nil {
		cfg = config.DefaultPuyoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPuyoPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	opts := engine.Options{
		DropCycle:        cfg.Timing.DropCycle,
		SettleEvery:      cfg.Timing.SettleEvery,
		PointsPerGarbage: cfg.Scoring.PointsPerGarbage,
	}

	n := 1
	if g.duel {
		n = 2
	}
	g.seats = g.seats[:0]
	for i := range n {
		s := &seat{
			id:   core.PlayerID(i + 1),
			game: engine.New(rand.New(rand.NewSource(runtime.Seed)), opts),
		}
		s.cache = s.game.Front()
		s.sync()
		g.seats = append(g.seats, s)
	}

	g.match = nil
	if g.duel {
		g.match = engine.NewDuel(g.seats[0].game, g.seats[1].game)
	}
	g.paused = false
}

// Step advances the game by one tick with player 1's input only.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(core.Player1, in)
	return g.StepMulti(multi)
}

// StepMulti advances the game by one tick. In solo mode both players'
// keys steer the single board.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	if g.over() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.duel {
		for _, s := range g.seats {
			s.apply(in.Player(s.id))
		}
	} else {
		s := g.seats[0]
		s.apply(in.Player1())
		s.apply(in.Player2())
	}

	for _, s := range g.seats {
		cycle := g.difficulty.DropCycle(g.cfg.Timing.DropCycle, g.cfg.Timing.MinDropCycle,
			s.game.Score(), s.game.Ticks())
		s.game.SetDropCycle(cycle)
	}

	if g.match != nil {
		g.match.Step()
	} else {
		g.seats[0].game.Step()
		// nobody receives solo garbage
		g.seats[0].game.TakeGarbage()
	}

	for _, s := range g.seats {
		s.sync()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) over() bool {
	if g.match != nil {
		return g.match.Outcome().Over
	}
	return len(g.seats) > 0 && g.seats[0].game.IsOver()
}

// State returns the current game state. In a duel the score is the
// higher of the two.
func (g *Game) State() core.GameState {
	score := 0
	for _, s := range g.seats {
		score = max(score, s.game.Score())
	}
	return core.GameState{
		Score:    score,
		GameOver: g.over(),
		Paused:   g.paused,
	}
}

// Scores returns the points of player 1 and player 2.
func (d *DuelGame) Scores() (int, int) {
	if len(d.seats) < 2 {
		return 0, 0
	}
	return d.seats[0].game.Score(), d.seats[1].game.Score()
}

// Winner returns the winning player, or 0 while running or on a draw.
func (d *DuelGame) Winner() core.PlayerID {
	if d.match == nil {
		return 0
	}
	switch d.match.Outcome().Winner {
	case engine.SideOne:
		return core.Player1
	case engine.SideTwo:
		return core.Player2
	default:
		return 0
	}
}

// Ticks returns the number of paired ticks played.
func (d *DuelGame) Ticks() uint64 {
	if d.match == nil {
		return 0
	}
	return d.match.Ticks()
}

var (
	_ registry.MultiplayerGame = (*Game)(nil)
	_ registry.MultiplayerGame = (*DuelGame)(nil)
	_ registry.Versus          = (*DuelGame)(nil)
)

// Register the modes with the registry
func init() {
	registry.Register(DuelID, func() registry.Game {
		return New()
	})
	registry.Register(SoloID, func() registry.Game {
		return NewSolo()
	})
}
