package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const postgresTimeout = 5 * time.Second

const recordsSchema = `
CREATE TABLE IF NOT EXISTS settlement_records (
	record_group TEXT NOT NULL,
	record_key   TEXT NOT NULL,
	value        BYTEA NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (record_group, record_key)
)`

const upsertRecord = `
INSERT INTO settlement_records (record_group, record_key, value, updated_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (record_group, record_key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

// PostgresStore keeps every record group in a single keyed table
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to dsn and makes sure the records table exists
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	conn, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if _, err := conn.ExecContext(ctx, recordsSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("postgres: create schema: %w", err)
	}
	return &PostgresStore{db: conn}, nil
}

// NewPostgresStoreFromDB wraps an existing connection pool
func NewPostgresStoreFromDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Get reads one record
func (s *PostgresStore) Get(group, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	var value []byte
	err := s.db.GetContext(ctx, &value,
		`SELECT value FROM settlement_records WHERE record_group = $1 AND record_key = $2`, group, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("postgres: get %s/%s: %w", group, key, err)
	}
	return value, true, nil
}

// Set upserts one record
func (s *PostgresStore) Set(group, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, upsertRecord, group, key, value); err != nil {
		return fmt.Errorf("postgres: set %s/%s: %w", group, key, err)
	}
	return nil
}

// Remove deletes one record
func (s *PostgresStore) Remove(group, key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM settlement_records WHERE record_group = $1 AND record_key = $2`, group, key)
	if err != nil {
		return fmt.Errorf("postgres: remove %s/%s: %w", group, key, err)
	}
	return nil
}

// Keys lists the keys of a group in ascending order
func (s *PostgresStore) Keys(group string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	var keys []string
	err := s.db.SelectContext(ctx, &keys,
		`SELECT record_key FROM settlement_records WHERE record_group = $1 ORDER BY record_key`, group)
	if err != nil {
		return nil, fmt.Errorf("postgres: keys %s: %w", group, err)
	}
	return keys, nil
}

// Apply writes all mutations inside one SQL transaction
func (s *PostgresStore) Apply(mutations []Mutation) error {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	for _, m := range mutations {
		if m.Delete {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM settlement_records WHERE record_group = $1 AND record_key = $2`, m.Group, m.Key)
		} else {
			_, err = tx.ExecContext(ctx, upsertRecord, m.Group, m.Key, m.Value)
		}
		if err != nil {
			return fmt.Errorf("postgres: apply %s/%s: %w", m.Group, m.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}
