package repositories

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
)

type ConnectionRepository interface {
	Create(ctx context.Context, conn *entities.Connection) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Connection, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error)
	GetBetween(ctx context.Context, senderID, receiverID uuid.UUID) (*entities.Connection, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConnectionStatus) error
}
