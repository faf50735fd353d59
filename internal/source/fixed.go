package source

import (
	"errors"
	"strings"
	"time"
)

func init() {
	Register(Info{ID: "fixed", Title: "Fixed word"}, NewFixed)
}

type fixed struct {
	word string
}

// NewFixed returns a source that always yields p.Fixed, uppercased.
// The word is not checked against the answer list.
func NewFixed(p Params) (Source, error) {
	w := strings.ToUpper(strings.TrimSpace(p.Fixed))
	if w == "" {
		return nil, errors.New("source: fixed source needs a word")
	}
	return &fixed{word: w}, nil
}

func (f *fixed) ID() string { return "fixed" }

func (f *fixed) Target(time.Time) (string, error) {
	return f.word, nil
}
