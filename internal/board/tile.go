package board

import "sort"

// Tile is a numbered piece occupying one grid cell.
type Tile struct {
	Index int    // Allocation order, unique per factory generation
	ID    string // Index plus factory generation tag
	Location

	Value int // Power of two, at least 2

	// Per-move flags. Move clears all three before resolving tiles.
	IsNew     bool // Spawned at the end of the last move
	IsMerging bool // Absorbed another tile during the last move
	Merged    bool // Already merged this move; blocks a second merge
}

// clone returns a detached copy of t.
func (t *Tile) clone() *Tile {
	c := *t
	return &c
}

// resetFlags clears the per-move flags.
func (t *Tile) resetFlags() {
	t.IsNew = false
	t.IsMerging = false
	t.Merged = false
}

// SortTiles orders tiles by allocation index so render order stays
// stable no matter where tiles sit on the grid.
func SortTiles(tiles []*Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Index < tiles[j].Index
	})
}

// isPowerOfTwo reports whether v is a power of two and at least 2.
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
