// wurdle is a word guessing game for the terminal, SSH and HTTP.
//
// Usage:
//
//	wurdle play              - Play a game in the terminal
//	wurdle menu              - Pick a word source, then play
//	wurdle serve             - Serve games over SSH and/or HTTP
//	wurdle sources           - List word sources
//	wurdle words <cmd>       - Manage the SQLite word bank
//	wurdle daily             - Show today's puzzle number
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.wurdle/config.yaml)
//	--fps <rate>    - Animation tick rate (default: 12)
//	--seed <value>  - RNG seed for the random source
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wurdle/internal/config"
	"github.com/vovakirdan/wurdle/internal/core"
	"github.com/vovakirdan/wurdle/internal/game"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wurdle",
	Short: "Wurdle - guess the five letter word",
	Long: `Wurdle is a word guessing game. Guess the hidden word in six tries;
after each guess the tiles show which letters are in the word and which
are in the right spot.

Available commands:
  play     - Play a game in the terminal
  menu     - Pick a word source interactively
  serve    - Serve games over SSH and HTTP
  sources  - Show the word sources
  words    - Import, inspect or clear the word bank
  daily    - Show today's puzzle number

Examples:
  wurdle play
  wurdle play --source daily
  wurdle serve --ssh :23234 --http :8080
  wurdle words import answers ./answers.txt`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Animation tick rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the random source (0 = time based)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(dailyCmd)
}

// loadDeps reads the configuration and word lists.
func loadDeps() (game.Deps, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return game.Deps{}, err
	}
	deps, err := game.LoadDeps(cfg)
	if err != nil {
		return game.Deps{}, err
	}
	log.Debug("word lists loaded",
		"answers", len(deps.Lists.Answers),
		"allowed", len(deps.Lists.Allowed),
		"open_mode", deps.Dict == nil,
	)
	return deps, nil
}

// runtimeConfig sizes the screen to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
