package blobs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dailyepiphany/epiphany/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository binds a repository to a database handle. The handle may
// be a *sql.DB or a *sql.Tx, so callers can group writes in a transaction.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, namespace string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM blobs WHERE namespace = ?`, namespace).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blobs[%s]: %w", namespace, err)
	}
	return payload, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, namespace string, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blobs (namespace, payload) VALUES (?, ?)
		ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload
	`, namespace, payload)
	if err != nil {
		return fmt.Errorf("failed to put blobs[%s]: %w", namespace, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, namespace string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE namespace = ?`, namespace)
	if err != nil {
		return fmt.Errorf("failed to delete blobs[%s]: %w", namespace, err)
	}
	return nil
}
