// Package storage provides abstractions for holding remote form sessions.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/tiptop/internal/models"
)

var (
	// ErrSessionNotFound is returned when no session has the requested ID.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTooManySessions is returned when the store is at capacity.
	ErrTooManySessions = errors.New("too many open sessions")
)

// Store defines the interface for session storage operations.
// This abstraction keeps the service layer independent of where sessions live.
type Store interface {
	// CreateSession stores a new session and assigns its ID and timestamps.
	// The session.ID field will be populated by the store.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by its ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// UpdateSession replaces the inputs of an existing session and bumps UpdatedAt.
	// Returns ErrSessionNotFound if the session does not exist.
	UpdateSession(ctx context.Context, session *models.Session) error

	// DeleteSession removes a session.
	// Returns ErrSessionNotFound if the session does not exist.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteIdleSessions removes every session not updated since before
	// and returns how many were removed.
	DeleteIdleSessions(ctx context.Context, before time.Time) (int, error)

	// Count returns the number of open sessions.
	Count(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
