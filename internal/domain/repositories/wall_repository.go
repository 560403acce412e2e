package repositories

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
)

type WallRepository interface {
	Create(ctx context.Context, wall *entities.Wall) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wall, error)
	ListPublished(ctx context.Context) ([]*entities.Wall, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.Wall, error)
	Update(ctx context.Context, wall *entities.Wall) error
	Delete(ctx context.Context, id uuid.UUID) error
	// IncrementViewCount bumps the counter with a single SQL expression so
	// concurrent increments never lose updates, and returns the new value.
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)
	// ListMediaRefs returns every stored media path referenced by any wall.
	ListMediaRefs(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
