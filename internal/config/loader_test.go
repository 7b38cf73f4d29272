package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRules(DefaultRulesYAML())
	if err != nil {
		t.Fatalf("parseRules(embedded) failed: %v", err)
	}
	if cfg != DefaultRulesConfig() {
		t.Errorf("embedded rules = %+v, want %+v", cfg, DefaultRulesConfig())
	}
}

func TestLoadRulesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte("board:\n  rows: 5\n  cols: 6\nspawn:\n  four_probability: 0.1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() failed: %v", err)
	}

	if cfg.Board.Rows != 5 || cfg.Board.Cols != 6 {
		t.Errorf("board = %dx%d, want 5x6", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Spawn.FourProbability != 0.1 {
		t.Errorf("four_probability = %v, want 0.1", cfg.Spawn.FourProbability)
	}
	// Unset keys keep defaults
	if cfg.Spawn.PerMove != 1 || cfg.Spawn.InitialTiles != 2 {
		t.Errorf("spawn defaults not kept: %+v", cfg.Spawn)
	}
}

func TestLoadRulesMissingCustomPath(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadRules() with missing custom path should fail")
	}
}

func TestLoadRulesInvalidCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("board:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadRules(path)
	if !errors.Is(err, ErrInvalidRules) {
		t.Errorf("LoadRules() error = %v, want ErrInvalidRules", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RulesConfig)
		ok     bool
	}{
		{"defaults", func(*RulesConfig) {}, true},
		{"rectangular", func(c *RulesConfig) { c.Board.Rows, c.Board.Cols = 3, 7 }, true},
		{"zero rows", func(c *RulesConfig) { c.Board.Rows = 0 }, false},
		{"single cell", func(c *RulesConfig) { c.Board.Rows, c.Board.Cols = 1, 1 }, false},
		{"negative per move", func(c *RulesConfig) { c.Spawn.PerMove = -1 }, false},
		{"negative initial", func(c *RulesConfig) { c.Spawn.InitialTiles = -2 }, false},
		{"probability above one", func(c *RulesConfig) { c.Spawn.FourProbability = 1.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRulesConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidRules) {
				t.Errorf("Validate() = %v, want ErrInvalidRules", err)
			}
		})
	}
}

func TestWithBoard(t *testing.T) {
	cfg := DefaultRulesConfig().WithBoard(6, 0)
	if cfg.Board.Rows != 6 || cfg.Board.Cols != 4 {
		t.Errorf("WithBoard(6, 0) = %dx%d, want 6x4", cfg.Board.Rows, cfg.Board.Cols)
	}
}
