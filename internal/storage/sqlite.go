// Package storage provides a SQLite word bank: imported answer and guess
// lists that take precedence over the embedded defaults.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wurdle/internal/words"
)

// List names a word list in the bank.
type List string

const (
	ListAnswers List = "answers"
	ListAllowed List = "allowed"
)

// ParseList validates a list name.
func ParseList(s string) (List, error) {
	switch List(s) {
	case ListAnswers, ListAllowed:
		return List(s), nil
	default:
		return "", fmt.Errorf("storage: unknown list %q (want answers or allowed)", s)
	}
}

// Store manages the SQLite database connection for the word bank.
type Store struct {
	db *sql.DB
}

// ListStats summarizes one list at one word length.
type ListStats struct {
	List       List
	Length     int
	Count      int
	LastImport time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			list TEXT NOT NULL,
			word TEXT NOT NULL,
			length INTEGER NOT NULL,
			added_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(list, word)
		);
		CREATE INDEX IF NOT EXISTS idx_words_list_length ON words(list, length);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportWords adds words to a list. Words are uppercased and must be A-Z only;
// invalid entries and words already in the list are skipped.
// Returns the number of words actually inserted.
func (s *Store) ImportWords(list List, raw []string) (int, error) {
	if _, err := ParseList(string(list)); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO words (list, word, length) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare import: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range normalizeAnyLength(raw) {
		res, err := stmt.Exec(string(list), w, len(w))
		if err != nil {
			return 0, fmt.Errorf("storage: cannot import %q: %w", w, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("storage: cannot count inserted rows: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return inserted, nil
}

// Words returns the words of a list with the given length in import order.
func (s *Store) Words(list List, length int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT word FROM words
		 WHERE list = ? AND length = ?
		 ORDER BY id`,
		string(list), length,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Lists returns the banked lists for a word length.
// Fails with words.ErrEmptyAnswers when no answers of that length are banked.
func (s *Store) Lists(length int) (words.Lists, error) {
	answers, err := s.Words(ListAnswers, length)
	if err != nil {
		return words.Lists{}, err
	}
	allowed, err := s.Words(ListAllowed, length)
	if err != nil {
		return words.Lists{}, err
	}
	return words.NewLists(answers, allowed, length)
}

// Stats returns per-list, per-length counts.
func (s *Store) Stats() ([]ListStats, error) {
	rows, err := s.db.Query(
		`SELECT list, length, COUNT(*), MAX(added_at)
		 FROM words
		 GROUP BY list, length
		 ORDER BY list, length`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []ListStats
	for rows.Next() {
		var st ListStats
		var list string
		var lastImport any
		if err := rows.Scan(&list, &st.Length, &st.Count, &lastImport); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.List = List(list)

		// Parse the datetime - handle both time.Time and string
		switch v := lastImport.(type) {
		case time.Time:
			st.LastImport = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				st.LastImport = parsed
			}
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearList deletes every word of a list and returns how many were removed.
func (s *Store) ClearList(list List) (int, error) {
	res, err := s.db.Exec("DELETE FROM words WHERE list = ?", string(list))
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear list: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return int(n), nil
}

// LoadLists prefers banked lists and falls back to fallback when the bank
// has no answers of the requested length.
func LoadLists(dbPath string, length int, fallback func() (words.Lists, error)) (words.Lists, error) {
	store, err := Open(dbPath)
	if err != nil {
		return words.Lists{}, err
	}
	defer store.Close()

	l, err := store.Lists(length)
	if errors.Is(err, words.ErrEmptyAnswers) {
		return fallback()
	}
	return l, err
}

// normalizeAnyLength keeps A-Z words of any length, uppercased and deduped.
func normalizeAnyLength(raw []string) []string {
	byLen := make(map[int][]string)
	var lengths []int
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		n := len(w)
		if _, ok := byLen[n]; !ok {
			lengths = append(lengths, n)
		}
		byLen[n] = append(byLen[n], w)
	}

	var out []string
	for _, n := range lengths {
		out = append(out, words.Normalize(byLen[n], n)...)
	}
	return out
}
