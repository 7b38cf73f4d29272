package config

import (
	_ "embed"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// DefaultRulesConfig returns the classic 4x4 rules.
func DefaultRulesConfig() RulesConfig {
	return RulesConfig{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Spawn: SpawnConfig{
			InitialTiles:    2,
			PerMove:         1,
			FourProbability: 0.01,
		},
	}
}

// DefaultRulesYAML returns the embedded default rules file.
func DefaultRulesYAML() []byte {
	return defaultRulesYAML
}
