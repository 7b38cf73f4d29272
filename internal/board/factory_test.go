package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTile(t *testing.T) {
	f := newTestFactory(7)

	tile := f.CreateTile(Location{R: 1, C: 2})

	assert.Equal(t, 0, tile.Index)
	assert.Equal(t, Location{R: 1, C: 2}, tile.Location)
	assert.True(t, tile.IsNew)
	assert.False(t, tile.IsMerging)
	assert.False(t, tile.Merged)
	assert.Contains(t, []int{2, 4}, tile.Value)
}

func TestCreateTileIndexesIncrease(t *testing.T) {
	f := newTestFactory(7)

	prev := -1
	ids := make(map[string]bool)
	for range 50 {
		tile := f.CreateTile(Location{})
		assert.Greater(t, tile.Index, prev)
		assert.False(t, ids[tile.ID], "duplicate id %s", tile.ID)
		prev = tile.Index
		ids[tile.ID] = true
	}
	assert.Equal(t, 50, f.Allocated())
}

func TestResetRestartsIndexWithNewIDs(t *testing.T) {
	f := newTestFactory(7)
	first := f.CreateTile(Location{})
	f.CreateTile(Location{})

	f.Reset()
	again := f.CreateTile(Location{})

	assert.Equal(t, 0, again.Index)
	assert.NotEqual(t, first.ID, again.ID)
	assert.Equal(t, 1, f.Allocated())
}

func TestFourProbability(t *testing.T) {
	tests := []struct {
		name string
		prob float64
		want int
	}{
		{"always two", 0, 2},
		{"always four", 1, 4},
		{"clamped above one", 3, 4},
		{"clamped below zero", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(3)
			f.SetFourProbability(tt.prob)
			for range 20 {
				assert.Equal(t, tt.want, f.CreateTile(Location{}).Value)
			}
		})
	}
}

func TestDefaultFourProbabilityIsRare(t *testing.T) {
	f := newTestFactory(99)

	fours := 0
	const n = 10000
	for range n {
		if f.CreateTile(Location{}).Value == 4 {
			fours++
		}
	}
	// ~1% expected; allow generous slack for the fixed seed.
	assert.Less(t, fours, n/20)
}

func TestSpawnTilesBound(t *testing.T) {
	empty := []Location{{0, 0}, {0, 1}, {1, 1}}

	tests := []struct {
		name  string
		empty []Location
		count int
		want  int
	}{
		{"fewer than available", empty, 2, 2},
		{"exactly available", empty, 3, 3},
		{"more than available", empty, 10, 3},
		{"zero requested", empty, 0, 0},
		{"no empty cells", nil, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(5)
			tiles := f.SpawnTiles(tt.empty, tt.count)
			require.Len(t, tiles, tt.want)

			seen := make(map[Location]bool)
			for _, tile := range tiles {
				assert.Contains(t, tt.empty, tile.Location)
				assert.False(t, seen[tile.Location], "location %s used twice", tile.Location)
				seen[tile.Location] = true
			}
		})
	}
}

func TestSpawnTilesDoesNotMutateInput(t *testing.T) {
	empty := []Location{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	orig := append([]Location(nil), empty...)

	newTestFactory(11).SpawnTiles(empty, 2)

	assert.Equal(t, orig, empty)
}

func TestSpawnTilesDeterministic(t *testing.T) {
	empty := []Location{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	a := newTestFactory(42).SpawnTiles(empty, 2)
	b := newTestFactory(42).SpawnTiles(empty, 2)

	require.Len(t, a, 2)
	require.Len(t, b, 2)
	for i := range a {
		assert.Equal(t, a[i].Location, b[i].Location)
		assert.Equal(t, a[i].Value, b[i].Value)
	}
}
