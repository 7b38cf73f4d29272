// Package game wraps the board engine in a playable game: lifecycle status,
// pause, score and move counters, and the registry.Game surface used by the
// terminal and network front ends.
package game

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/core"
)

// ErrNotStarted is returned by operations that need a running board.
var ErrNotStarted = errors.New("game: not started")

// Outcome describes what a Move call did.
type Outcome struct {
	Accepted   bool // False when the move was gated by status, pause or an in-flight move
	Changed    bool
	ScoreDelta int
	Merges     int
	Spawned    int
	Status     Status // Status after the move
}

// Game is a single board instance with its lifecycle.
// A Game is not safe for concurrent use; callers serialize access.
type Game struct {
	id    string
	title string
	opts  Options
	log   *log.Logger

	rng      *rand.Rand
	factory  *board.TileFactory
	resolver *board.MoveResolver
	grid     *board.Grid

	status  Status
	paused  bool
	busy    bool
	reached bool // Win tile seen this game
	score   int
	moves   int
	tick    uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates an idle game. Call Start or Reset before moving.
func New(id, title string, opts Options) *Game {
	rng := rand.New(rand.NewSource(0))
	factory := board.NewTileFactory(rng)
	resolver := board.NewMoveResolver(factory)
	opts.apply(factory, resolver)

	return &Game{
		id:       id,
		title:    title,
		opts:     opts,
		log:      log.New(io.Discard),
		rng:      rng,
		factory:  factory,
		resolver: resolver,
		screenW:  core.DefaultConfig().ScreenW,
		screenH:  core.DefaultConfig().ScreenH,
	}
}

// SetLogger sets the logger for status transitions. nil disables logging.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Options returns the options the game was created with.
func (g *Game) Options() Options { return g.opts }

// Start begins a new game seeded with seed: the factory restarts numbering,
// the grid is emptied and the initial tiles are spawned.
func (g *Game) Start(seed int64) error {
	grid, err := board.NewGrid(g.opts.Rows, g.opts.Cols)
	if err != nil {
		return err
	}

	g.rng.Seed(seed)
	g.factory.Reset()
	for _, t := range g.factory.SpawnTiles(grid.EmptyCells(), g.opts.InitialTiles) {
		if err := grid.Place(t); err != nil {
			return err
		}
	}
	board.SortTiles(grid.Tiles())

	g.grid = grid
	g.score = 0
	g.moves = 0
	g.tick = 0
	g.paused = false
	g.busy = false
	g.reached = false
	g.setStatus(StatusPlaying)
	return nil
}

// Move resolves one move toward dir. Moves are ignored unless the game is
// playing, unpaused and no other move is being resolved.
func (g *Game) Move(dir board.Vector) (Outcome, error) {
	if g.grid == nil {
		return Outcome{Status: g.status}, ErrNotStarted
	}
	if g.status != StatusPlaying || g.paused || g.busy {
		return Outcome{Status: g.status}, nil
	}

	g.busy = true
	defer func() { g.busy = false }()

	res, err := g.resolver.Move(g.grid, dir)
	if err != nil {
		return Outcome{Status: g.status}, err
	}

	out := Outcome{
		Accepted:   true,
		Changed:    res.Changed,
		ScoreDelta: res.ScoreDelta,
		Merges:     res.Merges,
		Spawned:    len(res.Spawned),
	}
	if !res.Changed {
		out.Status = g.status
		return out, nil
	}

	g.grid = res.Grid
	g.score += res.ScoreDelta
	g.moves++

	switch {
	case !g.reached && board.HasWon(g.grid.Tiles()):
		g.reached = true
		g.setStatus(StatusWon)
	case !board.CanContinue(g.grid):
		g.setStatus(StatusLost)
	}

	out.Status = g.status
	return out, nil
}

// Continue resumes play after a win. It reports whether the status changed.
func (g *Game) Continue() bool {
	if g.status != StatusWon {
		return false
	}
	if !board.CanContinue(g.grid) {
		g.setStatus(StatusLost)
		return true
	}
	g.setStatus(StatusPlaying)
	return true
}

// TogglePause flips the pause flag while a game is in progress.
func (g *Game) TogglePause() {
	g.SetPaused(!g.paused)
}

// SetPaused sets the pause flag. Finished games cannot be paused.
func (g *Game) SetPaused(p bool) {
	if p && g.status != StatusPlaying {
		return
	}
	if g.paused != p {
		g.log.Debug("pause", "game", g.id, "paused", p)
	}
	g.paused = p
}

func (g *Game) setStatus(s Status) {
	if g.status == s {
		return
	}
	g.log.Debug("status", "game", g.id, "from", g.status, "to", s, "score", g.score, "moves", g.moves)
	g.status = s
	if s != StatusPlaying {
		g.paused = false
	}
}

// Grid returns the current grid, or nil before Start.
func (g *Game) Grid() *board.Grid { return g.grid }

// Tiles returns the live tiles sorted by index.
func (g *Game) Tiles() []*board.Tile {
	if g.grid == nil {
		return nil
	}
	return g.grid.Tiles()
}

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Status returns the lifecycle status.
func (g *Game) Status() Status { return g.status }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// Busy reports whether a move is being resolved.
func (g *Game) Busy() bool { return g.busy }

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int { return g.moves }

// Reached reports whether the win tile appeared in this game.
func (g *Game) Reached() bool { return g.reached }

// MaxTile returns the highest tile on the board.
func (g *Game) MaxTile() int {
	if g.grid == nil {
		return 0
	}
	return g.grid.MaxValue()
}

// Reset initializes/restarts the game for the platform loop.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	if err := g.Start(cfg.Seed); err != nil {
		g.log.Error("start failed", "game", g.id, "err", err)
		g.grid = nil
		g.status = StatusIdle
	}
}

// Step advances the game by one tick. At most one move is applied per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall || g.grid == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionConfirm) && g.status == StatusWon {
		g.Continue()
		return core.StepResult{State: g.State()}
	}

	var dir board.Vector
	switch {
	case in.Has(core.ActionUp):
		dir = board.Up
	case in.Has(core.ActionDown):
		dir = board.Down
	case in.Has(core.ActionLeft):
		dir = board.Left
	case in.Has(core.ActionRight):
		dir = board.Right
	default:
		return core.StepResult{State: g.State()}
	}

	out, err := g.Move(dir)
	if err != nil {
		g.log.Error("move failed", "game", g.id, "dir", dir, "err", err)
	}
	return core.StepResult{State: g.State(), Moved: out.Changed}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxTile:  g.MaxTile(),
		Moves:    g.moves,
		Won:      g.reached,
		GameOver: g.status == StatusLost,
		Paused:   g.paused || g.tooSmall,
	}
}
