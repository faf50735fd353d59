package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wurdle/internal/platform/tui"
	"github.com/vovakirdan/wurdle/internal/source"
)

var (
	flagSource string
	flagWord   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play wurdle in the terminal.

Controls:
  a-z        - Type a letter
  Backspace  - Delete a letter
  Enter      - Submit the guess
  Ctrl+N     - New word (after the game is over)
  Ctrl+S     - Save the result to ~/.wurdle/results
  ?          - Show all keys
  Esc/Ctrl+C - Quit

Examples:
  wurdle play
  wurdle play --source daily
  wurdle play --word crane
  wurdle play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSource, "source", "", "Word source: daily, random or fixed (default from config)")
	playCmd.Flags().StringVar(&flagWord, "word", "", "Play this word (implies --source fixed)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	kind := flagSource
	if flagWord != "" {
		kind = "fixed"
	}
	if kind != "" && !source.Exists(kind) {
		return fmt.Errorf("unknown source %q, run 'wurdle sources' to list them", kind)
	}

	deps, err := loadDeps()
	if err != nil {
		return err
	}

	g, err := deps.NewGame(kind, flagWord, flagSeed)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	return tui.Run(g, tui.NewTheme(nil, deps.Config.Theme), runtimeConfig())
}
