package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/domain/repositories"
	"pikxora.backend/pkg/utils"
)

// ConnectionUsecase handles networking requests between profiles
type ConnectionUsecase struct {
	connRepo    repositories.ConnectionRepository
	profileRepo repositories.ProfileRepository
}

// NewConnectionUsecase creates a new connection usecase
func NewConnectionUsecase(
	connRepo repositories.ConnectionRepository,
	profileRepo repositories.ProfileRepository,
) *ConnectionUsecase {
	return &ConnectionUsecase{connRepo: connRepo, profileRepo: profileRepo}
}

// Create sends a connection request from the caller to another profile.
// Self-connections and repeat requests in the same direction are
// rejected.
func (u *ConnectionUsecase) Create(ctx context.Context, senderID uuid.UUID, input *entities.CreateConnectionInput) (*entities.Connection, error) {
	receiverID, err := uuid.Parse(input.ReceiverID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if receiverID == senderID {
		return nil, domainerrors.Validation("cannot connect to your own profile")
	}
	if _, err := u.profileRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	_, err = u.connRepo.GetBetween(ctx, senderID, receiverID)
	if err == nil {
		return nil, domainerrors.NewError("connection request already sent", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	conn := &entities.Connection{
		ID:         utils.GenerateUUIDv7(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     entities.ConnectionPending,
	}
	if input.Message != "" {
		conn.Message = null.StringFrom(input.Message)
	}

	if err := u.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// ListByProfile returns the caller's connections, sent and received.
func (u *ConnectionUsecase) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.Connection, error) {
	return u.connRepo.ListByProfile(ctx, profileID)
}

// UpdateStatus records the receiver's decision on a pending request.
// Only the receiver may decide, and a settled request stays settled.
func (u *ConnectionUsecase) UpdateStatus(ctx context.Context, profileID, connectionID uuid.UUID, status entities.ConnectionStatus) (*entities.Connection, error) {
	conn, err := u.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.ReceiverID != profileID {
		return nil, domainerrors.ErrForbidden
	}
	if conn.Status != entities.ConnectionPending {
		return nil, domainerrors.Validation("connection request already settled")
	}

	if err := u.connRepo.UpdateStatus(ctx, connectionID, status); err != nil {
		return nil, err
	}
	conn.Status = status
	return conn, nil
}
