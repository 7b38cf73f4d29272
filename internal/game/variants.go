package game

import (
	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/registry"
)

// Package-level rules used by registered variants
var (
	rules = config.DefaultRulesConfig()
)

// SetRules sets the rules applied to games created through the registry.
// The classic variant takes its dimensions from cfg; fixed-size variants
// only take the spawn settings.
func SetRules(cfg config.RulesConfig) {
	rules = cfg
}

// Rules returns the rules currently applied to registered variants.
func Rules() config.RulesConfig {
	return rules
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New("2048", "2048", OptionsFromRules(rules))
	})
	registry.Register("2048_5x5", func() registry.Game {
		return New("2048_5x5", "2048 (5x5)", OptionsFromRules(rules.WithBoard(5, 5)))
	})
	registry.Register("2048_3x3", func() registry.Game {
		return New("2048_3x3", "2048 (3x3)", OptionsFromRules(rules.WithBoard(3, 3)))
	})
}
