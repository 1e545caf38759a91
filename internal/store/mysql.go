package store

import (
	"context"
	"database/sql"
)

// MySQL keeps the key-value entries in a single table for deployments that
// already run the database and do not want a second storage system. It
// carries no Notifier; pair it with Redis when cross-context sync is needed.
type MySQL struct {
	db *sql.DB
}

// NewMySQL ensures the backing table exists and returns the store.
func NewMySQL(ctx context.Context, db *sql.DB) (*MySQL, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_entries (
			k VARCHAR(191) NOT NULL PRIMARY KEY,
			v MEDIUMTEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) CHARACTER SET utf8mb4`)
	if err != nil {
		return nil, err
	}
	return &MySQL{db: db}, nil
}

func (s *MySQL) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		"SELECT v FROM kv_entries WHERE k=? LIMIT 1", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *MySQL) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv_entries (k, v) VALUES (?,?) ON DUPLICATE KEY UPDATE v=VALUES(v)",
		key, value)
	return err
}

func (s *MySQL) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE k=?", key)
	return err
}
