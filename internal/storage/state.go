package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/utender/utender-cli/internal/dbx"
)

// Fixed keys of the two persisted entries, matching the names the web
// portal uses in localStorage.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store reads and writes the persisted string entries of the state table.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value for key, or ("", false, nil) when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get state[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set state[%s]: %w", key, err)
	}
	return nil
}

// Set upserts a single entry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.set(ctx, s.db, key, value)
}

// Delete removes a single entry; deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete state[%s]: %w", key, err)
	}
	return nil
}

// Clear wipes every persisted entry.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM state`)
	if err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}

// SaveCredentials writes token and serialized user in one transaction so an
// interrupted save can never leave a token without its user (or vice versa).
func (s *Store) SaveCredentials(ctx context.Context, token, userJSON string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, KeyToken, token); err != nil {
			return err
		}
		return s.set(ctx, tx, KeyUser, userJSON)
	})
}
