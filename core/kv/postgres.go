package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPostgresTable = "kv_store"

// Postgres is a Store backed by a single PostgreSQL table.
type Postgres struct {
	pool  *pgxpool.Pool
	table string
}

// PostgresOption configures the Postgres store.
type PostgresOption func(*Postgres)

// WithTable overrides the default table name ("kv_store").
func WithTable(table string) PostgresOption {
	return func(p *Postgres) {
		p.table = table
	}
}

// NewPostgres creates a Postgres-backed store on top of an existing pool and
// ensures the backing table exists. The caller owns the pool's lifecycle.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool, opts ...PostgresOption) (*Postgres, error) {
	p := &Postgres{pool: pool, table: defaultPostgresTable}
	for _, opt := range opts {
		opt(p)
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, p.table)
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("kv: create table %s: %w", p.table, err)
	}

	return p, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	var value []byte
	query := fmt.Sprintf("SELECT value FROM %s WHERE key = $1", p.table)
	if err := p.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	query := fmt.Sprintf(`INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, p.table)
	_, err := p.pool.Exec(ctx, query, key, value)
	return err
}

// Delete removes key. Deleting an absent key is not an error.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE key = $1", p.table)
	_, err := p.pool.Exec(ctx, query, key)
	return err
}
