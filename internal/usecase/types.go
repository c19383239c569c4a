package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"readme-generator/internal/domain"
)

// ErrNotReady is reported by adapters when generation is requested while
// the readiness gate is locked.
var ErrNotReady = errors.New("readme: fewer than 5 fields touched")

// GenerationsRepo records successful generations.
type GenerationsRepo interface {
	Save(ctx context.Context, g *domain.Generation) error
}

// Snapshot is a point-in-time view of a session.
type Snapshot struct {
	ID      uuid.UUID     `json:"id"`
	Fields  domain.Fields `json:"fields"`
	Touched []string      `json:"touched"`
	Ready   bool          `json:"ready"`
	Stats   domain.Stats  `json:"stats"`
}
