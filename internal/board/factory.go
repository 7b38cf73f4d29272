package board

import (
	"math/rand"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// DefaultFourProbability is the chance a spawned tile starts at 4 instead of 2.
const DefaultFourProbability = 0.01

// TileFactory allocates tiles with monotonically increasing indexes and
// random starting values. It belongs to one board instance; Reset starts a
// new numbering generation when a new game begins.
//
// A TileFactory is not safe for concurrent use.
type TileFactory struct {
	rng             *rand.Rand
	fourProbability float64
	next            int
	generation      string
}

// NewTileFactory creates a factory drawing from rng.
func NewTileFactory(rng *rand.Rand) *TileFactory {
	f := &TileFactory{
		rng:             rng,
		fourProbability: DefaultFourProbability,
	}
	f.Reset()
	return f
}

// SetFourProbability overrides the chance of spawning a 4. Values are clamped to [0, 1].
func (f *TileFactory) SetFourProbability(p float64) {
	f.fourProbability = min(max(p, 0), 1)
}

// FourProbability returns the current chance of spawning a 4.
func (f *TileFactory) FourProbability() float64 {
	return f.fourProbability
}

// Reset restarts index allocation at zero under a fresh generation tag,
// so ids never repeat across games played on the same factory.
func (f *TileFactory) Reset() {
	f.next = 0
	f.generation = uuid.NewString()[:8]
}

// Allocated returns how many tiles were created since the last Reset.
func (f *TileFactory) Allocated() int {
	return f.next
}

// CreateTile returns a new tile at loc flagged as new.
func (f *TileFactory) CreateTile(loc Location) *Tile {
	index := f.next
	f.next++

	value := 2
	if f.rng.Float64() < f.fourProbability {
		value = 4
	}

	return &Tile{
		Index:    index,
		ID:       strconv.Itoa(index) + "_" + f.generation,
		Location: loc,
		Value:    value,
		IsNew:    true,
	}
}

// SpawnTiles picks min(count, len(empty)) distinct locations uniformly at
// random and creates a tile on each. It returns nil when there is nothing to place.
func (f *TileFactory) SpawnTiles(empty []Location, count int) []*Tile {
	n := min(count, len(empty))
	if n <= 0 {
		return nil
	}

	shuffled := slices.Clone(empty)
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	tiles := make([]*Tile, 0, n)
	for _, loc := range shuffled[:n] {
		tiles = append(tiles, f.CreateTile(loc))
	}
	return tiles
}
