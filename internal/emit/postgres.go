// internal/emit/postgres.go
package emit

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const PostgresSinkName = "postgres"

// execer is the subset of *pgxpool.Pool the sink needs.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// The body column is json, not jsonb, so the stored text keeps its key order.
const createFixturesTableQ = `
	CREATE TABLE IF NOT EXISTS fixtures (
		name       TEXT PRIMARY KEY,
		body       JSON NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

const upsertFixtureQ = `
	INSERT INTO fixtures (name, body, updated_at)
	VALUES ($1, $2::json, NOW())
	ON CONFLICT (name)
	DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
`

// ConnectPostgres opens a pool for connStr and pings it.
func ConnectPostgres(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
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
	return pool, nil
}

// PostgresSink upserts each fixture into the fixtures table.
type PostgresSink struct {
	db execer
}

func NewPostgresSink(db execer) *PostgresSink {
	return &PostgresSink{db: db}
}

// EnsureTable creates the fixtures table if it does not exist yet.
func (s *PostgresSink) EnsureTable(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createFixturesTableQ); err != nil {
		return fmt.Errorf("failed to create fixtures table: %w", err)
	}
	return nil
}

func (s *PostgresSink) Name() string {
	return PostgresSinkName
}

func (s *PostgresSink) Write(ctx context.Context, name string, text []byte) error {
	if _, err := s.db.Exec(ctx, upsertFixtureQ, name, string(text)); err != nil {
		return fmt.Errorf("failed to upsert fixture: %w", err)
	}
	return nil
}
