package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-chi-calculator/internal/engine"
)

// ErrSessionNotFound is returned for an unknown or swept session ID.
var ErrSessionNotFound = errors.New("session not found")

// Session is a snapshot of one calculator session.
type Session struct {
	ID         string
	State      engine.State
	LastActive time.Time
}

// Store holds the current state of every live session. Each Apply batch runs
// under the store lock, so one action is fully applied before the next.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a session in the initial state.
func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:         uuid.New().String(),
		State:      engine.InitialState(),
		LastActive: s.now(),
	}
	s.sessions[sess.ID] = sess
	return *sess
}

// Get returns a copy of the session with the given ID.
func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *sess, nil
}

// Applied is the outcome of one Apply batch.
type Applied struct {
	Session  Session
	Previous engine.State
	// Steps holds the state after each action, in order.
	Steps []engine.State
}

// Apply folds actions into the session state.
func (s *Store) Apply(id string, actions ...engine.Action) (Applied, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Applied{}, ErrSessionNotFound
	}

	out := Applied{
		Previous: sess.State,
		Steps:    make([]engine.State, 0, len(actions)),
	}
	state := sess.State
	for _, a := range actions {
		state = engine.Apply(state, a)
		out.Steps = append(out.Steps, state)
	}

	sess.State = state
	sess.LastActive = s.now()
	out.Session = *sess
	return out, nil
}

// Delete ends the session, or returns ErrSessionNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Sweep removes sessions idle for longer than idle and returns how many were
// removed.
func (s *Store) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for id, sess := range s.sessions {
		if sess.LastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
