package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wurdle/internal/source"
)

var flagDate string

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show today's puzzle number",
	Long: `Print the daily puzzle number and its UTC date. The word itself is
not shown.

Examples:
  wurdle daily
  wurdle daily --date 2024-02-29`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&flagDate, "date", "", "Date as YYYY-MM-DD (default: today, UTC)")
}

func runDaily(_ *cobra.Command, _ []string) error {
	day := time.Now().UTC()
	if flagDate != "" {
		d, err := time.Parse("2006-01-02", flagDate)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		day = d
	}

	fmt.Printf("Wurdle %d (%s)\n", source.PuzzleNumber(day), source.DateKey(day))
	return nil
}
