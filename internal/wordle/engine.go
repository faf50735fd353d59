package wordle

import (
	"fmt"
	"strings"
)

// Engine owns the target word, the in-progress text and the submitted
// history of one game. It is driven by two events: SetInProgressText on
// every keystroke and SubmitGuess when the player presses enter.
//
// An Engine is not safe for concurrent use; callers serialize access.
type Engine struct {
	cfg       Config
	validator Validator
	dict      Dictionary // nil = open mode

	target  string
	text    string
	history []Guess
	status  Status
}

// NewEngine starts a game for target.
// A nil dict disables the dictionary check.
func NewEngine(target string, dict Dictionary, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := NewValidator(cfg.WordLength)
	if !v.IsWellFormed(target) {
		return nil, fmt.Errorf("%w: %q is not %d letters A-Z", ErrInvalidTarget, target, cfg.WordLength)
	}
	return &Engine{
		cfg:       cfg,
		validator: v,
		dict:      dict,
		target:    upperASCII(target),
		history:   make([]Guess, 0, cfg.MaxAttempts),
		status:    StatusInProgress,
	}, nil
}

// SetInProgressText replaces the typed text with raw after normalizing it:
// a-z is uppercased, everything outside A-Z is dropped, and the result is cut
// to the word length. Ignored once the game is decided.
func (e *Engine) SetInProgressText(raw string) {
	if e.status != StatusInProgress {
		return
	}
	e.text = e.normalize(raw)
}

func (e *Engine) normalize(raw string) string {
	var sb strings.Builder
	sb.Grow(e.cfg.WordLength)
	for _, r := range raw {
		if sb.Len() == e.cfg.WordLength {
			break
		}
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - 'a' + 'A')
		}
	}
	return sb.String()
}

// SubmitGuess scores the in-progress text and appends it to the history.
// On failure the engine is left exactly as it was and one of
// ErrGameAlreadyOver, ErrTooShort or ErrNotInDictionary is returned.
func (e *Engine) SubmitGuess() (Guess, error) {
	if e.status != StatusInProgress {
		return Guess{}, ErrGameAlreadyOver
	}
	if len(e.text) != e.cfg.WordLength {
		return Guess{}, ErrTooShort
	}
	if e.dict != nil && !e.validator.IsAcceptedWord(e.text, e.dict) {
		return Guess{}, ErrNotInDictionary
	}

	g := scoreGuess(e.text, e.target)
	e.history = append(e.history, g)
	e.text = ""

	// Won takes precedence on the final attempt.
	switch {
	case g.IsWin():
		e.status = StatusWon
	case len(e.history) >= e.cfg.MaxAttempts:
		e.status = StatusLost
	}
	return g.clone(), nil
}

// DisplayGrid returns MaxAttempts rows ready for rendering: submitted rows,
// then the in-progress row while the game is undecided, then empty rows.
// It is derived fresh on every call.
func (e *Engine) DisplayGrid() []Guess {
	rows := make([]Guess, e.cfg.MaxAttempts)
	for r := range rows {
		switch {
		case r < len(e.history):
			rows[r] = e.history[r].clone()
		case r == len(e.history) && e.status == StatusInProgress:
			rows[r] = e.inProgressRow()
		default:
			rows[r] = e.blankRow()
		}
	}
	return rows
}

func (e *Engine) inProgressRow() Guess {
	row := e.blankRow()
	for i := 0; i < len(e.text); i++ {
		row.Letters[i] = ScoredLetter{Letter: Letter(e.text[i]), Status: InProgress}
	}
	return row
}

func (e *Engine) blankRow() Guess {
	letters := make([]ScoredLetter, e.cfg.WordLength)
	for i := range letters {
		letters[i] = ScoredLetter{Letter: Blank, Status: Unfilled}
	}
	return Guess{Letters: letters}
}

// Status returns the game status.
func (e *Engine) Status() Status {
	return e.status
}

// InProgressText returns the normalized typed text.
func (e *Engine) InProgressText() string {
	return e.text
}

// History returns copies of the submitted guesses in order.
func (e *Engine) History() []Guess {
	out := make([]Guess, len(e.history))
	for i, g := range e.history {
		out[i] = g.clone()
	}
	return out
}

// Attempts returns the number of submitted guesses.
func (e *Engine) Attempts() int {
	return len(e.history)
}

// Config returns the board dimensions.
func (e *Engine) Config() Config {
	return e.cfg
}

// Target returns the hidden word. Presentation layers should only show it
// once Status().Over() is true.
func (e *Engine) Target() string {
	return e.target
}

// LetterHints returns the best status seen for each letter across all
// submitted guesses, ranked Correct > Present > Absent. Letters never
// submitted are absent from the map.
func (e *Engine) LetterHints() map[Letter]LetterStatus {
	hints := make(map[Letter]LetterStatus)
	for _, g := range e.history {
		for _, sl := range g.Letters {
			if cur, ok := hints[sl.Letter]; !ok || sl.Status > cur {
				hints[sl.Letter] = sl.Status
			}
		}
	}
	return hints
}
