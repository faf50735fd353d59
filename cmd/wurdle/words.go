package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wurdle/internal/config"
	"github.com/vovakirdan/wurdle/internal/storage"
	"github.com/vovakirdan/wurdle/internal/words"
)

const defaultBankPath = "~/.wurdle/words.db"

var flagBankPath string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the SQLite word bank",
	Long: `Import, inspect and clear the word bank.

When words.db is set in the config, games use the banked lists for the
configured word length and fall back to the list files otherwise.

Word files may be plain text (one word per line, # comments),
YAML ({words: [...]}) or JSON/JSONC ({"words": [...]}).

Examples:
  wurdle words import answers ./answers.txt
  wurdle words import allowed ./extra.yaml ./more.jsonc
  wurdle words stats
  wurdle words clear allowed`,
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <answers|allowed> <file>...",
	Short: "Import words from files",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runWordsImport,
}

var wordsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show banked word counts",
	Args:  cobra.NoArgs,
	RunE:  runWordsStats,
}

var wordsClearCmd = &cobra.Command{
	Use:   "clear <answers|allowed>",
	Short: "Delete every word of a list",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordsClear,
}

func init() {
	wordsCmd.PersistentFlags().StringVar(&flagBankPath, "db", "", "Word bank path (default: words.db from config, or "+defaultBankPath+")")

	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsStatsCmd)
	wordsCmd.AddCommand(wordsClearCmd)
}

// openBank opens the word bank named by --db, the config, or the default.
func openBank() (*storage.Store, error) {
	path := flagBankPath
	if path == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		path = cfg.Words.DB
	}
	if path == "" {
		path = defaultBankPath
	}
	return storage.Open(path)
}

func runWordsImport(_ *cobra.Command, args []string) error {
	list, err := storage.ParseList(args[0])
	if err != nil {
		return err
	}

	var raw []string
	for _, path := range args[1:] {
		ws, err := words.Load(path)
		if err != nil {
			return err
		}
		raw = append(raw, ws...)
	}

	store, err := openBank()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ImportWords(list, raw)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d new %s words (%d read).\n", n, list, len(raw))
	return nil
}

func runWordsStats(_ *cobra.Command, _ []string) error {
	store, err := openBank()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("The word bank is empty.")
		fmt.Println()
		fmt.Println("Run 'wurdle words import answers <file>' to add words.")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %s\n", "List", "Length", "Words", "Last import")
	fmt.Printf("  %-8s  %-6s  %-6s  %s\n", "----", "------", "-----", strings.Repeat("-", 11))
	for _, st := range stats {
		last := "-"
		if !st.LastImport.IsZero() {
			last = st.LastImport.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %s\n", st.List, st.Length, st.Count, last)
	}
	return nil
}

func runWordsClear(_ *cobra.Command, args []string) error {
	list, err := storage.ParseList(args[0])
	if err != nil {
		return err
	}

	store, err := openBank()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ClearList(list)
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d %s words.\n", n, list)
	return nil
}
