package repositories

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entities.TeamMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)
	ListByWall(ctx context.Context, wallID uuid.UUID) ([]*entities.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByWall(ctx context.Context, wallID uuid.UUID) error
}
