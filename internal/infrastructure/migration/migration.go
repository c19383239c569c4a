package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the schema steps in the order they run.
var Migrations = []Migration{
	{Name: "create_readme_generations", Up: createReadmeGenerations},
	{Name: "index_readme_generations_username", Up: indexReadmeGenerationsUsername},
}

// RunMigrations executes all necessary database migrations on startup.
// Every step is idempotent.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	logger.Info("Starting database migrations")

	for _, m := range Migrations {
		if err := m.Up(ctx, pool); err != nil {
			logger.Error("Migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		logger.Info("Migration completed", zap.String("name", m.Name))
	}

	logger.Info("All migrations completed successfully")
	return nil
}

func createReadmeGenerations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS readme_generations (
			id          UUID PRIMARY KEY,
			session_id  UUID NOT NULL,
			username    TEXT NOT NULL DEFAULT '',
			repo_count  INTEGER NOT NULL DEFAULT 0,
			languages   JSONB NOT NULL DEFAULT '[]'::jsonb,
			bytes       INTEGER NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func indexReadmeGenerationsUsername(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS readme_generations_username_idx
		ON readme_generations (username);
	`)
	return err
}
