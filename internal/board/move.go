package board

// DefaultSpawnPerMove is the number of tiles spawned after a move that changed the grid.
const DefaultSpawnPerMove = 1

// MoveResult is the outcome of resolving one move.
type MoveResult struct {
	Grid       *Grid   // Grid after the move; the input grid when nothing changed
	Changed    bool    // Any tile moved or merged
	ScoreDelta int     // Sum of merged tile values
	Merges     int     // Number of merges performed
	Spawned    []*Tile // Tiles created after the move
}

// MoveResolver applies moves to grids and spawns replacement tiles.
type MoveResolver struct {
	factory      *TileFactory
	spawnPerMove int
}

// NewMoveResolver creates a resolver that spawns through f.
func NewMoveResolver(f *TileFactory) *MoveResolver {
	return &MoveResolver{
		factory:      f,
		spawnPerMove: DefaultSpawnPerMove,
	}
}

// SetSpawnPerMove overrides how many tiles a changing move spawns.
// Negative values are treated as zero.
func (m *MoveResolver) SetSpawnPerMove(n int) {
	m.spawnPerMove = max(n, 0)
}

// Factory returns the tile factory used for spawning.
func (m *MoveResolver) Factory() *TileFactory {
	return m.factory
}

// Move slides every tile of g toward dir, merging equal neighbours once per
// move, then spawns new tiles if anything changed.
//
// g is never modified. On success a changed move returns a fresh grid; a
// move that changes nothing returns g itself with Changed false, no score
// and no spawn. Errors are ErrInvalidDirection for a bad vector and
// ErrInvariantViolation when g's bookkeeping is corrupt.
func (m *MoveResolver) Move(g *Grid, dir Vector) (MoveResult, error) {
	if err := dir.Validate(); err != nil {
		return MoveResult{}, err
	}
	if err := g.Verify(); err != nil {
		return MoveResult{}, err
	}

	next := g.Clone()
	for _, t := range next.tiles {
		t.resetFlags()
	}

	res := MoveResult{Grid: next}
	trav := PlanTraversal(next.rows, next.cols, dir)
	for _, loc := range trav.Cells() {
		t := next.At(loc)
		if t == nil {
			continue
		}

		farthest, beyond := next.farthestPosition(loc, dir)
		if target := next.At(beyond); target != nil && target.Value == t.Value && !target.Merged && !t.Merged {
			next.remove(t)
			target.Value *= 2
			target.IsMerging = true
			target.Merged = true
			res.ScoreDelta += target.Value
			res.Merges++
			res.Changed = true
			continue
		}

		if farthest != loc {
			next.relocate(t, farthest)
			res.Changed = true
		}
	}

	if !res.Changed {
		return MoveResult{Grid: g}, nil
	}

	res.Spawned = m.factory.SpawnTiles(next.EmptyCells(), m.spawnPerMove)
	for _, t := range res.Spawned {
		if err := next.Place(t); err != nil {
			return MoveResult{}, err
		}
	}

	SortTiles(next.tiles)
	return res, nil
}

// farthestPosition steps from loc along dir while the next cell is empty.
// It returns the last empty cell reached (loc itself when blocked at once)
// and the first cell beyond it, which may be occupied or out of bounds.
func (g *Grid) farthestPosition(loc Location, dir Vector) (farthest, beyond Location) {
	farthest = loc
	beyond = loc.Add(dir)
	for g.IsEmpty(beyond) {
		farthest = beyond
		beyond = beyond.Add(dir)
	}
	return farthest, beyond
}
