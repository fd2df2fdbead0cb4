// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Wait on locks held by other processes instead of failing with SQLITE_BUSY.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serialises transactions within this process.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSession persists a new session to the database.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if session.CreatedAt == 0 {
		session.CreatedAt = now
	}
	if session.UpdatedAt == 0 {
		session.UpdatedAt = session.CreatedAt
	}
	if session.Title == "" {
		session.Title = generateTitle(session.State.PartySize, session.CreatedAt)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, title, bill_text, bill_amount, tip_percent, party_size, amount_per_person, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.Title, session.BillText, session.State.BillAmount,
		session.State.TipPercent, session.State.PartySize, session.AmountPerPerson,
		session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

const selectSession = `SELECT id, title, bill_text, bill_amount, tip_percent, party_size, amount_per_person, created_at, updated_at
	FROM sessions WHERE id = ?`

// GetSession retrieves a session by ID.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := scanSession(s.db.QueryRowContext(ctx, selectSession, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func scanSession(row *sql.Row) (*models.Session, error) {
	session := &models.Session{}
	err := row.Scan(&session.ID, &session.Title, &session.BillText, &session.State.BillAmount,
		&session.State.TipPercent, &session.State.PartySize, &session.AmountPerPerson,
		&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession runs a read-modify-write of one session inside a transaction.
func (s *SQLiteStore) UpdateSession(ctx context.Context, sessionID string, apply func(*models.Session) error) (*models.Session, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := scanSession(tx.QueryRowContext(ctx, selectSession, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := apply(session); err != nil {
		return nil, err
	}
	session.ID = sessionID
	session.UpdatedAt = time.Now().Unix()

	_, err = tx.ExecContext(ctx,
		`UPDATE sessions
		 SET bill_text = ?, bill_amount = ?, tip_percent = ?, party_size = ?, amount_per_person = ?, updated_at = ?
		 WHERE id = ?`,
		session.BillText, session.State.BillAmount, session.State.TipPercent,
		session.State.PartySize, session.AmountPerPerson, session.UpdatedAt, session.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return session, nil
}

// DeleteSession removes a session by ID.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session %s: %w", sessionID, storage.ErrNotFound)
	}

	return nil
}

// generateTitle creates an auto-generated title from the party size and creation time.
func generateTitle(partySize int, createdAt int64) string {
	date := time.Unix(createdAt, 0).Format("Jan 2, 2006")
	if partySize <= 1 {
		return fmt.Sprintf("Bill - %s", date)
	}
	return fmt.Sprintf("Split %d ways - %s", partySize, date)
}
