package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFactory(seed int64) *TileFactory {
	return NewTileFactory(rand.New(rand.NewSource(seed)))
}

func mustGrid(t *testing.T, f *TileFactory, values [][]int) *Grid {
	t.Helper()
	g, err := FromValues(f, values)
	require.NoError(t, err)
	return g
}

// withoutSpawned blanks the cells of spawned tiles so assertions can
// compare the deterministic part of a move.
func withoutSpawned(g *Grid, spawned []*Tile) [][]int {
	values := g.Values()
	for _, t := range spawned {
		values[t.R][t.C] = 0
	}
	return values
}

func sumValues(g *Grid) int {
	total := 0
	for _, t := range g.Tiles() {
		total += t.Value
	}
	return total
}
