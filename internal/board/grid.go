// Package board implements the sliding-tile engine: grid storage, tile
// allocation, move resolution and terminal-state checks.
//
// The package is pure: it performs no I/O and does no logging. Callers own
// the RNG (through TileFactory) and the game status around it.
package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid is a rows x cols matrix of optional tile references plus the flat
// list of the tiles it holds. The grid is the only authority on placement:
// a tile's Location always equals the cell holding it.
type Grid struct {
	rows  int
	cols  int
	cells [][]*Tile
	tiles []*Tile
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]*Tile, rows)
	for r := range g.cells {
		g.cells[r] = make([]*Tile, cols)
	}
	return g, nil
}

// FromValues builds a grid from a matrix of tile values, 0 meaning empty.
// Tiles are allocated from f in row-major order. All rows must have equal length.
func FromValues(f *TileFactory, values [][]int) (*Grid, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	g, err := NewGrid(len(values), len(values[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		if len(row) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), g.cols)
		}
		for c, v := range row {
			if v == 0 {
				continue
			}
			loc := Location{R: r, C: c}
			if !isPowerOfTwo(v) {
				return nil, invariantf(loc, "value %d is not a power of two >= 2", v)
			}
			t := f.CreateTile(loc)
			t.Value = v
			t.IsNew = false
			if err := g.Place(t); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether loc addresses a cell of g.
func (g *Grid) InBounds(loc Location) bool {
	return loc.R >= 0 && loc.R < g.rows && loc.C >= 0 && loc.C < g.cols
}

// At returns the tile at loc, or nil for an empty or out-of-bounds cell.
func (g *Grid) At(loc Location) *Tile {
	if !g.InBounds(loc) {
		return nil
	}
	return g.cells[loc.R][loc.C]
}

// IsEmpty reports whether loc is an in-bounds cell with no tile.
func (g *Grid) IsEmpty(loc Location) bool {
	return g.InBounds(loc) && g.cells[loc.R][loc.C] == nil
}

// Tiles returns the live tiles. The slice is shared with the grid and must not be modified.
func (g *Grid) Tiles() []*Tile {
	return g.tiles
}

// Len returns the number of live tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// EmptyCells returns every unoccupied location in row-major order.
// The result is empty when the grid is full.
func (g *Grid) EmptyCells() []Location {
	empty := make([]Location, 0, g.Size()-len(g.tiles))
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] == nil {
				empty = append(empty, Location{R: r, C: c})
			}
		}
	}
	return empty
}

// Place puts t into the cell named by t.Location and appends it to the tile list.
// Placing into an occupied or out-of-bounds cell is an invariant violation
// and leaves the grid unchanged.
func (g *Grid) Place(t *Tile) error {
	if !g.InBounds(t.Location) {
		return invariantf(t.Location, "tile %s placed out of bounds", t.ID)
	}
	if occupant := g.cells[t.R][t.C]; occupant != nil {
		return invariantf(t.Location, "cell already holds tile %s", occupant.ID)
	}
	g.cells[t.R][t.C] = t
	g.tiles = append(g.tiles, t)
	return nil
}

// relocate moves t to the empty cell dst, keeping t.Location in sync.
func (g *Grid) relocate(t *Tile, dst Location) {
	g.cells[t.R][t.C] = nil
	t.Location = dst
	g.cells[dst.R][dst.C] = t
}

// remove takes t off the grid and out of the tile list.
func (g *Grid) remove(t *Tile) {
	g.cells[t.R][t.C] = nil
	for i, other := range g.tiles {
		if other == t {
			g.tiles = append(g.tiles[:i], g.tiles[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy: new tiles, new cells, same identities and values.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols}
	c.cells = make([][]*Tile, g.rows)
	for r := range c.cells {
		c.cells[r] = make([]*Tile, g.cols)
	}
	c.tiles = make([]*Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		ct := t.clone()
		c.cells[ct.R][ct.C] = ct
		c.tiles = append(c.tiles, ct)
	}
	return c
}

// Verify checks that every tile sits in exactly the cell its Location names,
// that every occupied cell holds a listed tile, and that all values are
// powers of two. It returns an *InvariantError on the first mismatch.
func (g *Grid) Verify() error {
	seen := make(map[*Tile]bool, len(g.tiles))
	for _, t := range g.tiles {
		if !g.InBounds(t.Location) {
			return invariantf(t.Location, "tile %s is out of bounds", t.ID)
		}
		if g.cells[t.R][t.C] != t {
			return invariantf(t.Location, "tile %s is not in its recorded cell", t.ID)
		}
		if seen[t] {
			return invariantf(t.Location, "tile %s is listed twice", t.ID)
		}
		if !isPowerOfTwo(t.Value) {
			return invariantf(t.Location, "tile %s has value %d", t.ID, t.Value)
		}
		seen[t] = true
	}
	for r := range g.rows {
		for c := range g.cols {
			if t := g.cells[r][c]; t != nil && !seen[t] {
				return invariantf(Location{R: r, C: c}, "cell holds unlisted tile %s", t.ID)
			}
		}
	}
	return nil
}

// Values returns the grid as a matrix of tile values with 0 for empty cells.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range g.rows {
		out[r] = make([]int, g.cols)
		for c := range g.cols {
			if t := g.cells[r][c]; t != nil {
				out[r][c] = t.Value
			}
		}
	}
	return out
}

// MaxValue returns the highest tile value, or 0 for an empty grid.
func (g *Grid) MaxValue() int {
	maxVal := 0
	for _, t := range g.tiles {
		if t.Value > maxVal {
			maxVal = t.Value
		}
	}
	return maxVal
}

// String renders the grid one row per line, with "." for empty cells.
func (g *Grid) String() string {
	width := len(strconv.Itoa(g.MaxValue()))
	var sb strings.Builder
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if t := g.cells[r][c]; t != nil {
				cell = strconv.Itoa(t.Value)
			}
			sb.WriteString(strings.Repeat(" ", max(0, width-len(cell))))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}
