// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tipsplit/internal/models"
)

// ErrNotFound is returned when a requested session does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for session storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateSession persists a new session.
	// The session.ID, Title and timestamps are populated by the store when empty.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by its ID.
	// Returns an error wrapping ErrNotFound if it does not exist.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// UpdateSession loads a session, passes it to apply and writes back the
	// inputs and computed amount, all in one transaction. If apply returns an
	// error nothing is written. Returns the updated session.
	UpdateSession(ctx context.Context, sessionID string, apply func(*models.Session) error) (*models.Session, error)

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, sessionID string) error

	// Close releases any resources held by the store.
	Close() error
}
