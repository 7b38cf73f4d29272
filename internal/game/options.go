package game

import (
	"github.com/vovakirdan/slide2048/internal/board"
	"github.com/vovakirdan/slide2048/internal/config"
)

// Options configures one game instance.
type Options struct {
	Rows            int
	Cols            int
	InitialTiles    int
	SpawnPerMove    int
	FourProbability float64
}

// DefaultOptions returns the classic 4x4 rules.
func DefaultOptions() Options {
	return OptionsFromRules(config.DefaultRulesConfig())
}

// OptionsFromRules converts loaded rules into game options.
func OptionsFromRules(cfg config.RulesConfig) Options {
	return Options{
		Rows:            cfg.Board.Rows,
		Cols:            cfg.Board.Cols,
		InitialTiles:    cfg.Spawn.InitialTiles,
		SpawnPerMove:    cfg.Spawn.PerMove,
		FourProbability: cfg.Spawn.FourProbability,
	}
}

// apply pushes spawn settings into the engine components.
func (o Options) apply(f *board.TileFactory, m *board.MoveResolver) {
	f.SetFourProbability(o.FourProbability)
	m.SetSpawnPerMove(o.SpawnPerMove)
}
