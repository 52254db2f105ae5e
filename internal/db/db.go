// Package db provides PostgreSQL persistence for users and their resumes.
package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Migration is one idempotent schema change.
type Migration struct {
	Name string
	SQL  string
}

// Migrations is the ordered schema of the service. Every statement is safe to
// re-run.
var Migrations = []Migration{
	{
		Name: "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name              TEXT NOT NULL,
			email             TEXT NOT NULL UNIQUE,
			password_hash     TEXT NOT NULL,
			profile_image_url TEXT NOT NULL DEFAULT '',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "create_resumes",
		SQL: `CREATE TABLE IF NOT EXISTS resumes (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title      TEXT NOT NULL,
			document   JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		Name: "index_resumes_user_updated",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_resumes_user_updated ON resumes (user_id, updated_at DESC)`,
	},
}

// EnsureSchema applies every migration in order.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, m := range Migrations {
		if _, err := db.pool.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
		log.Printf("[db] migration %s applied", m.Name)
	}
	return nil
}
