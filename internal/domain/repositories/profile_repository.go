package repositories

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	List(ctx context.Context, role string) ([]*entities.Profile, error)
	ListByVerificationStatus(ctx context.Context, status entities.VerificationStatus) ([]*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error
	Count(ctx context.Context) (int64, error)
}
