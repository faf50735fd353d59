package source

import (
	"math/rand"
	"sync"
	"time"
)

func init() {
	Register(Info{ID: "random", Title: "Random word"}, NewRandom)
}

type random struct {
	mu      sync.Mutex
	rng     *rand.Rand
	answers []string
}

// NewRandom returns a source picking uniformly from p.Answers. A zero
// p.Seed seeds from the clock.
func NewRandom(p Params) (Source, error) {
	if len(p.Answers) == 0 {
		return nil, ErrNoAnswers
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &random{
		rng:     rand.New(rand.NewSource(seed)),
		answers: append([]string(nil), p.Answers...),
	}, nil
}

func (r *random) ID() string { return "random" }

func (r *random) Target(time.Time) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.answers[r.rng.Intn(len(r.answers))], nil
}
