package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 15, g.Size())
	assert.Zero(t, g.Len())
	assert.Len(t, g.EmptyCells(), 15)
}

func TestNewGridInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 2}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{
		{2, 0, 8},
		{0, 4, 0},
	})

	expected := []Location{{0, 1}, {1, 0}, {1, 2}}
	assert.Equal(t, expected, g.EmptyCells())
}

func TestEmptyCellsFullGrid(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{
		{2, 4},
		{8, 16},
	})

	assert.Empty(t, g.EmptyCells())
}

func TestPlaceOccupiedCell(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 0}})

	before := g.Values()
	err := g.Place(f.CreateTile(Location{R: 0, C: 0}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvariantViolation)

	var inv *InvariantError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, Location{R: 0, C: 0}, inv.Loc)

	assert.Equal(t, before, g.Values(), "failed placement must not change the grid")
	assert.Equal(t, 1, g.Len())
}

func TestPlaceOutOfBounds(t *testing.T) {
	f := newTestFactory(1)
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	err = g.Place(f.CreateTile(Location{R: 2, C: 0}))
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Zero(t, g.Len())
}

func TestFromValuesRejectsBadInput(t *testing.T) {
	f := newTestFactory(1)

	_, err := FromValues(f, [][]int{{2, 3}})
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, err = FromValues(f, [][]int{{2, 2}, {2}})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = FromValues(f, nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestVerifyDetectsLocationMismatch(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 0, 0}})
	require.NoError(t, g.Verify())

	g.Tiles()[0].C = 2

	assert.ErrorIs(t, g.Verify(), ErrInvariantViolation)
}

func TestCloneIsDeep(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{{2, 4}})

	c := g.Clone()
	c.Tiles()[0].Value = 64

	assert.Equal(t, 2, g.Tiles()[0].Value)
	assert.Equal(t, g.Tiles()[0].ID, c.Tiles()[0].ID)
	assert.NoError(t, c.Verify())
}

func TestGridString(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{
		{2, 0, 128},
		{0, 16, 0},
	})

	expected := "  2   . 128\n  .  16   ."
	assert.Equal(t, expected, g.String())
}

func TestMaxValue(t *testing.T) {
	f := newTestFactory(1)
	g := mustGrid(t, f, [][]int{
		{2, 4, 8, 16},
		{512, 1024, 2048, 4},
	})

	assert.Equal(t, 2048, g.MaxValue())
}
