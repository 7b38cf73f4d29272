// Package config provides YAML-based rule configuration loading for the
// board engine.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is returned by Validate for unusable rule values.
var ErrInvalidRules = errors.New("config: invalid rules")

// RulesConfig contains the tunable rules of a board instance.
// The win tile is fixed and not part of the config.
type RulesConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles placed when a game starts
	PerMove         int     `yaml:"per_move"`         // Tiles placed after each changing move
	FourProbability float64 `yaml:"four_probability"` // Chance a new tile is a 4 (0.0-1.0)
}

// Validate reports the first rule that cannot drive a game.
func (c RulesConfig) Validate() error {
	switch {
	case c.Board.Rows < 1 || c.Board.Cols < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidRules, c.Board.Rows, c.Board.Cols)
	case c.Board.Rows*c.Board.Cols < 2:
		return fmt.Errorf("%w: board needs at least two cells", ErrInvalidRules)
	case c.Spawn.InitialTiles < 0:
		return fmt.Errorf("%w: initial_tiles must not be negative", ErrInvalidRules)
	case c.Spawn.PerMove < 0:
		return fmt.Errorf("%w: per_move must not be negative", ErrInvalidRules)
	case c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1:
		return fmt.Errorf("%w: four_probability %v outside [0, 1]", ErrInvalidRules, c.Spawn.FourProbability)
	}
	return nil
}

// WithBoard returns a copy of c with the given dimensions.
// Non-positive values keep the current dimension.
func (c RulesConfig) WithBoard(rows, cols int) RulesConfig {
	if rows > 0 {
		c.Board.Rows = rows
	}
	if cols > 0 {
		c.Board.Cols = cols
	}
	return c
}
