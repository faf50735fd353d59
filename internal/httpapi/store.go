package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/wurdle/internal/game"
)

// ErrNotFound is returned by Store.Get for an unknown session ID.
var ErrNotFound = errors.New("httpapi: session not found")

// Session is one API game. The mutex serializes requests against the same
// game; Game itself is not safe for concurrent use.
type Session struct {
	ID      string
	Created time.Time

	mu   sync.Mutex
	game *game.Game
}

// NewSession wraps g under a fresh random ID.
func NewSession(g *game.Game) *Session {
	return &Session{ID: genID(), Created: time.Now().UTC(), game: g}
}

// With runs fn while holding the session lock.
func (s *Session) With(fn func(g *game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Store keeps API sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get returns the session with the given ID or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Len returns the number of stored sessions.
	Len() int
}

// DefaultSessionTTL is how long an API session is kept after it was created.
const DefaultSessionTTL = 24 * time.Hour

type memory struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore returns a Store that lives in process memory. Sessions older
// than ttl are dropped; ttl <= 0 keeps them until the process exits.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *memory) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok && !m.expired(s) {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *memory) expired(s *Session) bool {
	return m.ttl > 0 && m.now().Sub(s.Created) > m.ttl
}

// sweep drops expired sessions, at most once per tenth of the TTL.
// Callers hold the write lock.
func (m *memory) sweep() {
	if m.ttl <= 0 {
		return
	}
	now := m.now()
	if now.Sub(m.lastSweep) < m.ttl/10 {
		return
	}
	m.lastSweep = now
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
		}
	}
}

// genID creates a 22-char URL-safe random identifier.
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
