package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveSingleRow(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		dir      Vector
		expected []int
		score    int
	}{
		{"simple merge", []int{2, 2, 0, 0}, Left, []int{4, 0, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2, 0}, Left, []int{4, 2, 0, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, Left, []int{4, 4, 0, 0}, 8},
		{"slide with gap", []int{0, 0, 2, 2}, Left, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, Left, []int{4, 0, 0, 0}, 4},
		{"single tile", []int{0, 4, 0, 0}, Left, []int{4, 0, 0, 0}, 0},
		{"merged tile does not merge again", []int{4, 4, 8, 0}, Left, []int{8, 8, 0, 0}, 8},
		{"right triple", []int{0, 2, 2, 2}, Right, []int{0, 0, 2, 4}, 4},
		{"right slide", []int{2, 0, 4, 0}, Right, []int{0, 0, 2, 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(1)
			g := mustGrid(t, f, [][]int{tt.input})

			res, err := NewMoveResolver(f).Move(g, tt.dir)
			require.NoError(t, err)

			assert.True(t, res.Changed)
			assert.Equal(t, tt.score, res.ScoreDelta)
			require.Len(t, res.Spawned, 1)
			assert.Equal(t, [][]int{tt.expected}, withoutSpawned(res.Grid, res.Spawned))
			assert.Zero(t, tt.expected[res.Spawned[0].C], "spawn landed on an occupied cell")
		})
	}
}

func TestMoveLeftExample(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 2, 0, 0}})

	res, err := NewMoveResolver(f).Move(g, Left)
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, 4, res.ScoreDelta)
	assert.Equal(t, 1, res.Merges)
	require.Len(t, res.Spawned, 1)
	assert.Contains(t, []Location{{0, 1}, {0, 2}, {0, 3}}, res.Spawned[0].Location)
	assert.Equal(t, 4, res.Grid.At(Location{R: 0, C: 0}).Value)
}

func TestMoveGrid(t *testing.T) {
	board := [][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	tests := []struct {
		name     string
		dir      Vector
		expected [][]int
		score    int
	}{
		{
			name: "up",
			dir:  Up,
			expected: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			name: "down",
			dir:  Down,
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score: 4 + 8 + 4 + 4,
		},
		{
			name: "left",
			dir:  Left,
			expected: [][]int{
				{2, 4, 2, 0},
				{4, 0, 0, 0},
				{4, 2, 0, 0},
				{4, 0, 0, 0},
			},
			score: 4 + 4,
		},
		{
			name: "right",
			dir:  Right,
			expected: [][]int{
				{0, 2, 4, 2},
				{0, 0, 0, 4},
				{0, 0, 4, 2},
				{0, 0, 0, 4},
			},
			score: 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFactory(1)
			g := mustGrid(t, f, board)

			res, err := NewMoveResolver(f).Move(g, tt.dir)
			require.NoError(t, err)

			assert.True(t, res.Changed)
			assert.Equal(t, tt.score, res.ScoreDelta)
			assert.Equal(t, tt.expected, withoutSpawned(res.Grid, res.Spawned))
			assert.NoError(t, res.Grid.Verify())
		})
	}
}

func TestMoveNoChangeIsNoop(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
	})
	allocated := f.Allocated()
	before := g.Values()

	res, err := NewMoveResolver(f).Move(g, Left)
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Zero(t, res.ScoreDelta)
	assert.Empty(t, res.Spawned)
	assert.Same(t, g, res.Grid)
	assert.Equal(t, before, g.Values())
	assert.Equal(t, allocated, f.Allocated(), "no-op must not allocate tiles")
}

func TestMoveDoesNotModifyInput(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 2, 4, 0}})
	before := g.Values()
	first := g.Tiles()[0]

	res, err := NewMoveResolver(f).Move(g, Left)
	require.NoError(t, err)
	require.True(t, res.Changed)

	assert.Equal(t, before, g.Values())
	assert.Equal(t, 2, first.Value)
	assert.Equal(t, Location{R: 0, C: 0}, first.Location)
	assert.NotSame(t, g, res.Grid)
}

func TestMoveInvalidDirection(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 2}})
	allocated := f.Allocated()

	for _, dir := range []Vector{{0, 0}, {1, 1}, {0, 2}} {
		_, err := NewMoveResolver(f).Move(g, dir)
		assert.ErrorIs(t, err, ErrInvalidDirection)
	}
	assert.Equal(t, [][]int{{2, 2}}, g.Values())
	assert.Equal(t, allocated, f.Allocated())
}

func TestMoveRejectsCorruptGrid(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 0, 2}})
	g.Tiles()[1].C = 1

	_, err := NewMoveResolver(f).Move(g, Left)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestMoveFlags(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 2, 0, 8}})
	resolver := NewMoveResolver(f)

	res, err := resolver.Move(g, Left)
	require.NoError(t, err)

	merged := res.Grid.At(Location{R: 0, C: 0})
	require.NotNil(t, merged)
	assert.True(t, merged.IsMerging)
	assert.True(t, merged.Merged)
	assert.False(t, merged.IsNew)

	moved := res.Grid.At(Location{R: 0, C: 1})
	require.NotNil(t, moved)
	assert.Equal(t, 8, moved.Value)
	assert.False(t, moved.IsMerging)

	for _, s := range res.Spawned {
		assert.True(t, s.IsNew)
	}

	// Flags last exactly one move.
	res2, err := resolver.Move(res.Grid, Right)
	require.NoError(t, err)
	require.True(t, res2.Changed)
	for _, tile := range res2.Grid.Tiles() {
		spawned := false
		for _, s := range res2.Spawned {
			if s == tile {
				spawned = true
			}
		}
		if !spawned {
			assert.False(t, tile.IsNew, "tile %s kept IsNew", tile.ID)
		}
		if tile.IsMerging {
			assert.True(t, tile.Merged)
		}
	}
}

func TestMoveTripleColumnMergesOnce(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{
		{2},
		{2},
		{2},
	})

	res, err := NewMoveResolver(f).Move(g, Down)
	require.NoError(t, err)

	assert.Equal(t, 4, res.ScoreDelta)
	assert.Equal(t, 1, res.Merges)
	assert.Equal(t, [][]int{{0}, {2}, {4}}, withoutSpawned(res.Grid, res.Spawned))
}

func TestMoveKeepsSurvivorIdentity(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 2}})
	target := g.Tiles()[0]

	res, err := NewMoveResolver(f).Move(g, Left)
	require.NoError(t, err)

	survivor := res.Grid.At(Location{R: 0, C: 0})
	require.NotNil(t, survivor)
	assert.Equal(t, target.ID, survivor.ID)
	assert.Equal(t, target.Index, survivor.Index)
}

func TestMoveTilesSortedByIndex(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{
		{0, 0, 2},
		{4, 0, 0},
		{0, 8, 0},
	})

	res, err := NewMoveResolver(f).Move(g, Right)
	require.NoError(t, err)

	tiles := res.Grid.Tiles()
	for i := 1; i < len(tiles); i++ {
		assert.Less(t, tiles[i-1].Index, tiles[i].Index)
	}
}

func TestMoveConservation(t *testing.T) {
	f := newTestFactory(2024)
	resolver := NewMoveResolver(f)
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	for _, tile := range f.SpawnTiles(g.EmptyCells(), 2) {
		require.NoError(t, g.Place(tile))
	}

	for i := range 300 {
		dir := Directions[i%len(Directions)]
		res, err := resolver.Move(g, dir)
		require.NoError(t, err)

		if !res.Changed {
			assert.Zero(t, res.ScoreDelta)
			assert.Empty(t, res.Spawned)
			continue
		}

		spawnedSum := 0
		for _, s := range res.Spawned {
			spawnedSum += s.Value
		}
		// Each merge of two v tiles into 2v keeps the sum; spawns add to it.
		assert.Equal(t, sumValues(g)+spawnedSum, sumValues(res.Grid))
		assert.Equal(t, g.Len()-res.Merges+len(res.Spawned), res.Grid.Len())
		require.NoError(t, res.Grid.Verify())

		g = res.Grid
		if !CanContinue(g) {
			break
		}
	}
}

func TestMoveSpawnPerMove(t *testing.T) {
	f := newTestFactory(1)
	resolver := NewMoveResolver(f)
	resolver.SetSpawnPerMove(3)
	g := mustGrid(t, f, [][]int{{0, 0, 0, 2}})

	res, err := resolver.Move(g, Left)
	require.NoError(t, err)
	assert.Len(t, res.Spawned, 3)
	assert.Equal(t, 4, res.Grid.Len())

	resolver.SetSpawnPerMove(0)
	g = mustGrid(t, f, [][]int{{0, 0, 0, 2}})
	res, err = resolver.Move(g, Left)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Empty(t, res.Spawned)
}
