package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/libracli/internal/client/models"
	"github.com/dmitrijs2005/libracli/internal/common"
	"github.com/dmitrijs2005/libracli/internal/dbx"
)

// SQLiteStore keeps the token pair in a key/value metadata table inside the
// client's SQLite database. Both mutations run in a single transaction so
// the both-or-neither invariant holds even if the process dies mid-write.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

// Save stores both tokens of the pair in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, pair models.TokenPair) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, common.AccessTokenKey, pair.AccessToken); err != nil {
			return err
		}
		return s.set(ctx, tx, common.RefreshTokenKey, pair.RefreshToken)
	})
}

// Clear removes both tokens in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (?, ?)`,
			common.AccessTokenKey, common.RefreshTokenKey)
		if err != nil {
			return fmt.Errorf("failed to clear tokens: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) Access(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, common.AccessTokenKey)
}

func (s *SQLiteStore) Refresh(ctx context.Context) (string, error) {
	return s.get(ctx, s.db, common.RefreshTokenKey)
}
