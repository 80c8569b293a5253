package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS scoreboard_slots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// Store keeps scoreboard slots in a Postgres table.
type Store struct {
	DB *pgxpool.Pool
}

// ConnectDB opens a pool for connStr, pings it and creates the slots table if needed.
func ConnectDB(ctx context.Context, connStr string) (*Store, error) {
	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &Store{DB: pool}, nil
}

// Load returns the value stored under key.
func (s *Store) Load(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRow(ctx, `SELECT value FROM scoreboard_slots WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load slot %s: %w", key, err)
	}
	return value, true, nil
}

// Save upserts the value stored under key.
func (s *Store) Save(ctx context.Context, key, value string) error {
	q := `
		INSERT INTO scoreboard_slots (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	err := pgx.BeginTxFunc(ctx, s.DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, q, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}

// Close closes the pool.
func (s *Store) Close() error {
	s.DB.Close()
	return nil
}
