package game

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Rows    int
	Cols    int
	Score   int
	Moves   int
	MaxTile int
	Status  Status
	Paused  bool
	Values  [][]int // Tile values, 0 for empty cells
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.id,
		Rows:    g.opts.Rows,
		Cols:    g.opts.Cols,
		Score:   g.score,
		Moves:   g.moves,
		MaxTile: g.MaxTile(),
		Status:  g.status,
		Paused:  g.paused,
	}
	if g.grid != nil {
		snap.Values = g.grid.Values()
	}
	return snap
}
