package source

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DefaultSalt keys the daily word when none is configured.
const DefaultSalt = "wurdle"

// epoch is the date of puzzle #0.
var epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

func init() {
	Register(Info{ID: "daily", Title: "Word of the day"}, NewDaily)
}

// Daily picks the same word for everyone on a given UTC date.
type Daily struct {
	salt    string
	answers []string
}

// NewDaily returns a date-keyed source over p.Answers.
func NewDaily(p Params) (Source, error) {
	if len(p.Answers) == 0 {
		return nil, ErrNoAnswers
	}
	salt := p.Salt
	if salt == "" {
		salt = DefaultSalt
	}
	return &Daily{
		salt:    salt,
		answers: append([]string(nil), p.Answers...),
	}, nil
}

func (d *Daily) ID() string { return "daily" }

// Target returns the word for now's UTC date.
func (d *Daily) Target(now time.Time) (string, error) {
	return d.answers[WordIndex(now, d.salt, len(d.answers))], nil
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns HMAC-SHA256(salt, DateKey(date)) mod n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// PuzzleNumber returns the number of whole UTC days between the epoch and
// t. Dates before the epoch return 0.
func PuzzleNumber(t time.Time) int {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	n := int(day.Sub(epoch).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}
