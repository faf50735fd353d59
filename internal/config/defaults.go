package config

import (
	_ "embed"
)

//go:embed defaults/wurdle.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			WordLength:  5,
			MaxAttempts: 6,
		},
		Source: SourceConfig{
			Kind:      "random",
			DailySalt: "wurdle",
		},
		Theme: ThemeConfig{
			Correct: "2",
			Present: "3",
			Absent:  "8",
			Pending: "7",
			Border:  "240",
			Error:   "1",
		},
	}
}
