package game

import (
	"strings"

	"github.com/vovakirdan/wurdle/internal/wordle"
)

// Snapshot captures the visible game state for tests and logs.
type Snapshot struct {
	Source      string
	Status      string
	Attempts    int
	MaxAttempts int
	Text        string
	Rows        []string // one line per grid row, see rowString
	Message     string
	Target      string // empty while in progress
	Revealing   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	grid := g.engine.DisplayGrid()
	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = rowString(row)
	}

	s := Snapshot{
		Source:      g.src.ID(),
		Status:      g.engine.Status().String(),
		Attempts:    g.engine.Attempts(),
		MaxAttempts: g.cfg.MaxAttempts,
		Text:        g.engine.InProgressText(),
		Rows:        rows,
		Message:     g.message,
		Revealing:   g.reveal.active(),
	}
	if g.engine.Status().Over() {
		s.Target = g.engine.Target()
	}
	return s
}

// rowString renders a submitted row as "CRANE -GY--" (G correct, Y present,
// - absent) and other rows as their letters with '_' for blanks.
func rowString(row wordle.Guess) string {
	var letters, marks strings.Builder
	for _, sl := range row.Letters {
		if sl.Letter.IsBlank() {
			letters.WriteByte('_')
		} else {
			letters.WriteByte(byte(sl.Letter))
		}
		switch sl.Status {
		case wordle.Correct:
			marks.WriteByte('G')
		case wordle.Present:
			marks.WriteByte('Y')
		case wordle.Absent:
			marks.WriteByte('-')
		}
	}
	if !row.Submitted {
		return letters.String()
	}
	return letters.String() + " " + marks.String()
}
