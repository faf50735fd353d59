package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wurdle/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List word sources",
	Long:  `Shows the word sources a game can be started from.`,
	Args:  cobra.NoArgs,
	Run:   runSources,
}

func runSources(_ *cobra.Command, _ []string) {
	sources := source.List()

	fmt.Println("Available sources:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wurdle play --source <id>' to play.")
}
