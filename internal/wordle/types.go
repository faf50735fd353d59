// Package wordle implements the guess-evaluation and game-state engine.
// It has no dependencies outside the standard library and performs no I/O,
// so every presentation layer (terminal, SSH, HTTP) can drive it directly.
package wordle

import "fmt"

// Letter is a single uppercase ASCII letter, or Blank for an unfilled cell.
type Letter byte

// Blank marks a cell with no character typed or submitted.
const Blank Letter = ' '

// IsBlank reports whether the letter is the unfilled sentinel.
func (l Letter) IsBlank() bool {
	return l == Blank
}

// String returns the letter as a one-character string.
func (l Letter) String() string {
	return string(rune(l))
}

// LetterStatus is the feedback state of a single cell.
type LetterStatus int

const (
	Unfilled   LetterStatus = iota // nothing typed at this position
	InProgress                     // typed but not submitted
	Absent                         // not in the target (or all copies used)
	Present                        // in the target at another position
	Correct                        // in the target at this position
)

// String returns a human-readable name for the status.
func (s LetterStatus) String() string {
	switch s {
	case Unfilled:
		return "unfilled"
	case InProgress:
		return "in_progress"
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Judged reports whether the status is a post-submission judgment.
func (s LetterStatus) Judged() bool {
	return s == Absent || s == Present || s == Correct
}

// ScoredLetter pairs a letter with its status.
type ScoredLetter struct {
	Letter Letter
	Status LetterStatus
}

// Guess is one row of the board.
// Submitted rows only hold Absent/Present/Correct letters and are never
// mutated once created; in-progress rows only hold InProgress/Unfilled.
type Guess struct {
	Letters   []ScoredLetter
	Submitted bool
}

// Word returns the letters of the guess as a string, blanks included.
func (g Guess) Word() string {
	b := make([]byte, len(g.Letters))
	for i, sl := range g.Letters {
		b[i] = byte(sl.Letter)
	}
	return string(b)
}

// Statuses returns the status of every cell in order.
func (g Guess) Statuses() []LetterStatus {
	out := make([]LetterStatus, len(g.Letters))
	for i, sl := range g.Letters {
		out[i] = sl.Status
	}
	return out
}

// IsWin reports whether every cell of a submitted guess is Correct.
func (g Guess) IsWin() bool {
	if !g.Submitted || len(g.Letters) == 0 {
		return false
	}
	for _, sl := range g.Letters {
		if sl.Status != Correct {
			return false
		}
	}
	return true
}

// clone returns a deep copy so callers cannot alias engine-owned rows.
func (g Guess) clone() Guess {
	letters := make([]ScoredLetter, len(g.Letters))
	copy(letters, g.Letters)
	return Guess{Letters: letters, Submitted: g.Submitted}
}

// Status is the overall state of a game.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the game status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the game is decided.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}

// Config holds the board dimensions.
type Config struct {
	WordLength  int // letters per word
	MaxAttempts int // rows on the board
}

// DefaultConfig returns the classic 5x6 board.
func DefaultConfig() Config {
	return Config{
		WordLength:  5,
		MaxAttempts: 6,
	}
}

// Validate rejects non-positive dimensions.
func (c Config) Validate() error {
	if c.WordLength <= 0 {
		return fmt.Errorf("wordle: word length must be positive, got %d", c.WordLength)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("wordle: max attempts must be positive, got %d", c.MaxAttempts)
	}
	return nil
}
