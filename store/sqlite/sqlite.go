/*
Package sqlite provides the SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements leave.OverrideStore (the sparse Saturday overlay) and
  auth.Directory (the user directory) on a single SQLite database.

KEY TABLES:
  saturday_overrides:  One row per non-default Saturday (working day).
                       Absence of a row means "default holiday"; rows
                       with is_holiday=true are never written.
  users:               Directory records with role, bcrypt password
                       hash, and the token version used for session
                       revocation.

SPARSE OVERLAY ENFORCEMENT:
  The overlay stays sparse by construction: the engine deletes rows to
  represent the default state, and Put only ever writes is_holiday=0.
  The store does not second-guess that; it persists what it is given.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. Each operation touches exactly
  one row, so single-statement atomicity is all the engine relies on.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/leave.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - leave/store.go: OverrideStore contract
  - auth/types.go: Directory contract
  - store/memory/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/srmorg/leave-engine/auth"
	"github.com/srmorg/leave-engine/leave"
)

// Store implements leave.OverrideStore and auth.Directory using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Sparse overlay: one row per working-day Saturday
	CREATE TABLE IF NOT EXISTS saturday_overrides (
		date TEXT PRIMARY KEY,
		is_holiday BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TEXT NOT NULL,
		updated_by TEXT NOT NULL
	);

	-- User directory
	CREATE TABLE IF NOT EXISTS users (
		uid TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		token_version INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// OVERRIDE STORE - leave.OverrideStore
// =============================================================================

// Put creates or replaces the override for rec.Date.
func (s *Store) Put(ctx context.Context, rec leave.Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO saturday_overrides (date, is_holiday, updated_at, updated_by)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			is_holiday = excluded.is_holiday,
			updated_at = excluded.updated_at,
			updated_by = excluded.updated_by
	`

	_, err := s.db.ExecContext(ctx, query,
		rec.Date,
		rec.IsHoliday,
		rec.UpdatedAt.Format(time.RFC3339),
		rec.UpdatedBy,
	)
	return err
}

// Delete removes the override for date. Deleting a non-existent
// override is a success.
func (s *Store) Delete(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM saturday_overrides WHERE date = ?", date)
	return err
}

// List returns all overrides keyed by date.
func (s *Store) List(ctx context.Context) (map[string]leave.Override, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT date, is_holiday, updated_at, updated_by
		FROM saturday_overrides
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(map[string]leave.Override)
	for rows.Next() {
		var rec leave.Override
		var updatedAt string
		if err := rows.Scan(&rec.Date, &rec.IsHoliday, &updatedAt, &rec.UpdatedBy); err != nil {
			return nil, err
		}
		rec.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		overrides[rec.Date] = rec
	}

	return overrides, rows.Err()
}

// =============================================================================
// USER DIRECTORY - auth.Directory
// =============================================================================

// FindByEmail returns the user with the given email, or nil.
func (s *Store) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUser(ctx, "email = ?", email)
}

// FindByUID returns the user with the given uid, or nil.
func (s *Store) FindByUID(ctx context.Context, uid string) (*auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.findUser(ctx, "uid = ?", uid)
}

func (s *Store) findUser(ctx context.Context, where string, arg any) (*auth.User, error) {
	query := `
		SELECT uid, email, name, role, password_hash, token_version, created_at
		FROM users
		WHERE ` + where

	var u auth.User
	var createdAt string
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.UID, &u.Email, &u.Name, &u.Role, &u.PasswordHash, &u.TokenVersion, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

// SaveUser creates or replaces a user record.
func (s *Store) SaveUser(ctx context.Context, u auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO users (uid, email, name, role, password_hash, token_version, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uid) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			role = excluded.role,
			password_hash = excluded.password_hash,
			token_version = excluded.token_version
	`

	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, query,
		u.UID, u.Email, u.Name, string(u.Role), u.PasswordHash, u.TokenVersion,
		createdAt.Format(time.RFC3339),
	)
	return err
}

// BumpTokenVersion increments the user's token version, revoking all
// outstanding session tokens.
func (s *Store) BumpTokenVersion(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET token_version = token_version + 1 WHERE uid = ?", uid)
	return err
}
