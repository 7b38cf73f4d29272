package board

import (
	"fmt"
	"strings"
)

// Location is a 0-indexed (row, column) cell address.
type Location struct {
	R int
	C int
}

// Add returns the location one step along v.
func (l Location) Add(v Vector) Location {
	return Location{R: l.R + v.R, C: l.C + v.C}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.R, l.C)
}

// Vector is a move direction. Exactly one component is non-zero for a legal move.
type Vector struct {
	R int
	C int
}

// The four legal move directions.
var (
	Up    = Vector{R: -1, C: 0}
	Down  = Vector{R: 1, C: 0}
	Left  = Vector{R: 0, C: -1}
	Right = Vector{R: 0, C: 1}
)

// Directions lists every legal vector in the order continuation checks use.
var Directions = []Vector{Left, Right, Up, Down}

// Validate reports ErrInvalidDirection for anything other than the four legal vectors.
func (v Vector) Validate() error {
	switch v {
	case Up, Down, Left, Right:
		return nil
	}
	return fmt.Errorf("%w: {%d,%d}", ErrInvalidDirection, v.R, v.C)
}

func (v Vector) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("{%d,%d}", v.R, v.C)
	}
}

// ParseVector converts a direction name (up, down, left, right) to its vector.
// Single-letter forms u/d/l/r are accepted.
func ParseVector(name string) (Vector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Vector{}, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}
