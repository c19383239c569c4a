package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"readme-generator/internal/domain"
)

// GenerationsRepo stores README generation metadata in Postgres. A repo
// built with a nil pool is a no-op so the service runs without a database.
type GenerationsRepo struct {
	pool *pgxpool.Pool
}

func NewGenerationsRepo(pool *pgxpool.Pool) *GenerationsRepo {
	return &GenerationsRepo{pool: pool}
}

func (r *GenerationsRepo) Save(ctx context.Context, g *domain.Generation) error {
	if r == nil || r.pool == nil {
		return nil
	}

	langs := g.Languages
	if langs == nil {
		langs = []string{}
	}
	langsB, err := json.Marshal(langs)
	if err != nil {
		return fmt.Errorf("marshal languages: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO readme_generations (id, session_id, username, repo_count, languages, bytes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET session_id = EXCLUDED.session_id, username = EXCLUDED.username, repo_count = EXCLUDED.repo_count, languages = EXCLUDED.languages, bytes = EXCLUDED.bytes`,
		g.ID, g.SessionID, g.Username, g.RepoCount, langsB, g.Bytes, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert readme_generations: %w", err)
	}
	return nil
}
