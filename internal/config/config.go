// Package config provides YAML-based configuration loading for wurdle,
// with .env and environment variable overrides.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/wurdle/internal/source"
	"github.com/vovakirdan/wurdle/internal/wordle"
)

// Config is the full application configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Words  WordsConfig  `yaml:"words"`
	Source SourceConfig `yaml:"source"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// GameConfig defines the board dimensions.
type GameConfig struct {
	WordLength  int `yaml:"word_length"`
	MaxAttempts int `yaml:"max_attempts"`
}

// WordsConfig defines where the word lists come from.
type WordsConfig struct {
	Answers  string `yaml:"answers"`   // answer list file, empty = embedded
	Allowed  string `yaml:"allowed"`   // extra guesses file, empty = embedded
	OpenMode bool   `yaml:"open_mode"` // accept any well-formed guess
	DB       string `yaml:"db"`        // SQLite word bank path, empty = none
}

// SourceConfig selects how the target word is picked.
type SourceConfig struct {
	Kind      string `yaml:"kind"`
	Fixed     string `yaml:"fixed"`
	DailySalt string `yaml:"daily_salt"`
}

// ThemeConfig holds terminal colors (ANSI numbers or hex) per tile state.
type ThemeConfig struct {
	Correct string `yaml:"correct"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
	Pending string `yaml:"pending"`
	Border  string `yaml:"border"`
	Error   string `yaml:"error"`
}

// Wordle returns the engine dimensions.
func (c Config) Wordle() wordle.Config {
	return wordle.Config{
		WordLength:  c.Game.WordLength,
		MaxAttempts: c.Game.MaxAttempts,
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if err := c.Wordle().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Source.Kind == "" {
		return errors.New("config: source kind is empty")
	}
	if !source.Exists(c.Source.Kind) {
		return fmt.Errorf("config: unknown source %q", c.Source.Kind)
	}
	if c.Source.Kind == "fixed" && c.Source.Fixed == "" {
		return errors.New("config: fixed source needs source.fixed")
	}
	return nil
}
