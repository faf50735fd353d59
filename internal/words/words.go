// Package words loads the answer and guess lists the game draws its targets
// from and validates guesses against.
//
// Two lists are kept:
//   - answers: words a game may pick as its target
//   - allowed: extra words accepted as guesses (answers are always accepted)
//
// Without configured files the embedded defaults are used.
package words

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/wurdle/internal/wordle"
)

//go:embed answers.txt
var embeddedAnswers []byte

//go:embed allowed.txt
var embeddedAllowed []byte

// DefaultLength is the word length of the embedded lists.
const DefaultLength = 5

// ErrEmptyAnswers is returned when no usable answer words remain after
// normalization.
var ErrEmptyAnswers = errors.New("words: answers list is empty")

// Lists holds normalized, uppercase word lists.
type Lists struct {
	Answers []string
	Allowed []string
}

// Embedded returns the built-in lists filtered to the given word length.
func Embedded(length int) (Lists, error) {
	answers, err := ParseText(embeddedAnswers)
	if err != nil {
		return Lists{}, err
	}
	allowed, err := ParseText(embeddedAllowed)
	if err != nil {
		return Lists{}, err
	}
	return NewLists(answers, allowed, length)
}

// NewLists normalizes raw answer and allowed words for the given length.
// An empty allowed list is fine; an empty answers list is not.
func NewLists(answers, allowed []string, length int) (Lists, error) {
	l := Lists{
		Answers: Normalize(answers, length),
		Allowed: Normalize(allowed, length),
	}
	if len(l.Answers) == 0 {
		return Lists{}, fmt.Errorf("%w (length %d)", ErrEmptyAnswers, length)
	}
	return l, nil
}

// LoadLists reads the answer list from answersPath and the allowed list from
// allowedPath. Empty paths fall back to the embedded lists; when only
// allowedPath is set it serves as the answer list too.
func LoadLists(answersPath, allowedPath string, length int) (Lists, error) {
	if answersPath == "" && allowedPath == "" {
		return Embedded(length)
	}

	var answers, allowed []string
	var err error

	if allowedPath != "" {
		allowed, err = Load(allowedPath)
		if err != nil {
			return Lists{}, err
		}
	}

	switch {
	case answersPath != "":
		answers, err = Load(answersPath)
		if err != nil {
			return Lists{}, err
		}
	default:
		answers = allowed
	}

	return NewLists(answers, allowed, length)
}

// Dictionary builds the accepted-guess set: answers plus allowed words.
func (l Lists) Dictionary() wordle.Dictionary {
	all := make([]string, 0, len(l.Answers)+len(l.Allowed))
	all = append(all, l.Answers...)
	all = append(all, l.Allowed...)
	return wordle.NewDictionary(all...)
}

// Normalize uppercases words, keeps only A-Z words of the given length, and
// removes duplicates while preserving first-seen order.
func Normalize(words []string, length int) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))

	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
