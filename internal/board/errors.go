package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is returned when a move vector is not one of Up, Down, Left or Right.
	ErrInvalidDirection = errors.New("board: invalid direction")

	// ErrInvalidDimensions is returned when a grid is requested with fewer than one row or column.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")

	// ErrInvariantViolation marks an internal consistency failure between
	// tiles and grid cells. It indicates a bug, never a game condition.
	ErrInvariantViolation = errors.New("board: invariant violation")
)

// InvariantError describes which cell broke the grid/tile bookkeeping.
type InvariantError struct {
	Loc    Location
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("board: invariant violation at %s: %s", e.Loc, e.Reason)
}

// Is lets errors.Is match ErrInvariantViolation.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

func invariantf(loc Location, format string, args ...any) error {
	return &InvariantError{Loc: loc, Reason: fmt.Sprintf(format, args...)}
}
