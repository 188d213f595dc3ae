package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unitbox/unitbox/internal/domain/history"
)

// ErrNotFound indicates an unknown or already-ended session.
var ErrNotFound = errors.New("session not found")

// Session is one user's interaction scope. The history log lives and dies
// with it.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	log *history.Log

	mu         sync.Mutex
	lastActive time.Time
}

// Log returns the session's history log.
func (s *Session) Log() *history.Log {
	return s.log
}

// LastActive returns the time of the last touch.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// Manager creates, resolves, and ends sessions.
type Manager struct {
	sessions sync.Map
	count    int64
	mu       sync.Mutex
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{}
}

// Create starts a new session with an empty history log.
func (m *Manager) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		log:        history.NewLog(),
		lastActive: now,
	}
	m.sessions.Store(s.ID, s)
	m.mu.Lock()
	m.count++
	m.mu.Unlock()
	return s
}

// Get resolves a session by ID and marks it active.
func (m *Manager) Get(id string) (*Session, error) {
	val, ok := m.sessions.Load(id)
	if !ok {
		return nil, ErrNotFound
	}
	s := val.(*Session)
	s.touch()
	return s, nil
}

// Log resolves a session's history log. A nil or empty ID yields a nil
// log, which callers treat as "do not record".
func (m *Manager) Log(id *string) *history.Log {
	if id == nil || *id == "" {
		return nil
	}
	s, err := m.Get(*id)
	if err != nil {
		return nil
	}
	return s.Log()
}

// End discards a session and its history log.
func (m *Manager) End(id string) error {
	if _, ok := m.sessions.LoadAndDelete(id); !ok {
		return ErrNotFound
	}
	m.mu.Lock()
	m.count--
	m.mu.Unlock()
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int(m.count)
}

// Sweep ends every session idle for longer than maxIdle and returns how
// many were discarded.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	swept := 0

	m.sessions.Range(func(key, value interface{}) bool {
		s := value.(*Session)
		if s.LastActive().Before(cutoff) {
			if err := m.End(s.ID); err == nil {
				swept++
			}
		}
		return true
	})

	return swept
}
