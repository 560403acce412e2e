package repositories

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	ListByWall(ctx context.Context, wallID uuid.UUID) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByWall(ctx context.Context, wallID uuid.UUID) error
	ListMediaRefs(ctx context.Context) ([]string, error)
}
