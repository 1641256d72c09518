// Package memory provides an in-memory implementation of the storage.Store interface.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tiptop/internal/models"
	"github.com/mmynk/tiptop/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with a map guarded by a mutex.
// Sessions are copied in and out so callers never share state with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string]models.Session
	maxSessions int
	now         func() time.Time
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithMaxSessions caps the number of open sessions. Zero means unlimited.
func WithMaxSessions(n int) Option {
	return func(s *MemoryStore) { s.maxSessions = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// New creates an empty MemoryStore.
func New(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSession stores a new session with a generated ID.
func (s *MemoryStore) CreateSession(ctx context.Context, session *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return fmt.Errorf("failed to create session: %w", storage.ErrTooManySessions)
	}

	now := s.now().Unix()
	session.ID = uuid.New().String()
	session.CreatedAt = now
	session.UpdatedAt = now
	s.sessions[session.ID] = *session
	return nil
}

// GetSession returns a copy of the session.
func (s *MemoryStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, storage.ErrSessionNotFound)
	}
	return &session, nil
}

// UpdateSession replaces the stored inputs. ID and CreatedAt are kept from the store.
func (s *MemoryStore) UpdateSession(ctx context.Context, session *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.sessions[session.ID]
	if !ok {
		return fmt.Errorf("session %s: %w", session.ID, storage.ErrSessionNotFound)
	}
	existing.Inputs = session.Inputs
	existing.UpdatedAt = s.now().Unix()
	s.sessions[session.ID] = existing

	session.CreatedAt = existing.CreatedAt
	session.UpdatedAt = existing.UpdatedAt
	return nil
}

// DeleteSession removes the session.
func (s *MemoryStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("session %s: %w", sessionID, storage.ErrSessionNotFound)
	}
	delete(s.sessions, sessionID)
	return nil
}

// DeleteIdleSessions removes sessions last updated before the cutoff.
func (s *MemoryStore) DeleteIdleSessions(ctx context.Context, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := before.Unix()
	removed := 0
	for id, session := range s.sessions {
		if session.UpdatedAt < cutoff {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Count returns the number of open sessions.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}

// Close drops every session.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]models.Session)
	return nil
}
