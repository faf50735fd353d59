package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wurdle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a word source, then play",
	Long: `Start wurdle in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a word source.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select source
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	deps, err := loadDeps()
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	theme := tui.NewTheme(nil, deps.Config.Theme)
	items := tui.MenuItems(deps.Config.Source.Fixed != "")

	for {
		res, err := tui.RunMenu(items, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		if res.Quit {
			return nil
		}

		// Seeded runs only fix the first game; later games get fresh words.
		seed := cfg.Seed
		cfg.Seed = time.Now().UnixNano()

		g, err := deps.NewGame(res.SourceID, "", seed)
		if err != nil {
			log.Error("cannot start game", "source", res.SourceID, "error", err)
			continue
		}
		if err := tui.Run(g, theme, cfg); err != nil {
			log.Error("game exited", "error", err)
		}
	}
}
