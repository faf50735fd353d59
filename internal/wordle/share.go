package wordle

import (
	"fmt"
	"strings"
)

const (
	tileCorrect = "🟩"
	tilePresent = "🟨"
	tileAbsent  = "⬛"
)

// ShareText renders the submitted history as an emoji grid with a
// "title N/M" header (X instead of N for a loss). It returns an empty string
// while the game is still in progress so the answer is never leaked.
func (e *Engine) ShareText(title string) string {
	if !e.status.Over() {
		return ""
	}

	score := "X"
	if e.status == StatusWon {
		score = fmt.Sprint(len(e.history))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s/%d", title, score, e.cfg.MaxAttempts)
	for _, g := range e.history {
		sb.WriteByte('\n')
		for _, sl := range g.Letters {
			switch sl.Status {
			case Correct:
				sb.WriteString(tileCorrect)
			case Present:
				sb.WriteString(tilePresent)
			default:
				sb.WriteString(tileAbsent)
			}
		}
	}
	return sb.String()
}
