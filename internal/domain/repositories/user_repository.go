package repositories

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, offset, limit int) ([]*entities.User, int64, error)
}
