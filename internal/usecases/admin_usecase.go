package usecases

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
	"pikxora.backend/internal/domain/repositories"
	"pikxora.backend/pkg/utils"
)

// PlatformStats aggregates counts for the admin dashboard
type PlatformStats struct {
	Users                int64 `json:"users"`
	Profiles             int64 `json:"profiles"`
	Walls                int64 `json:"walls"`
	PendingVerifications int64 `json:"pending_verifications"`
}

// AdminUsecase handles verification review and platform stats
type AdminUsecase struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	wallRepo    repositories.WallRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	wallRepo repositories.WallRepository,
) *AdminUsecase {
	return &AdminUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		wallRepo:    wallRepo,
	}
}

// ListUsers returns a page of accounts with pagination metadata.
func (u *AdminUsecase) ListUsers(ctx context.Context, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	users, total, err := u.userRepo.List(ctx, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// ListPendingVerifications returns profiles awaiting review, oldest
// first.
func (u *AdminUsecase) ListPendingVerifications(ctx context.Context) ([]*entities.Profile, error) {
	return u.profileRepo.ListByVerificationStatus(ctx, entities.VerificationPending)
}

// DecideVerification approves or rejects a profile's verification.
func (u *AdminUsecase) DecideVerification(ctx context.Context, profileID uuid.UUID, status entities.VerificationStatus) (*entities.Profile, error) {
	if err := u.profileRepo.UpdateVerificationStatus(ctx, profileID, status); err != nil {
		return nil, err
	}
	return u.profileRepo.GetByID(ctx, profileID)
}

// Stats returns platform-wide counts.
func (u *AdminUsecase) Stats(ctx context.Context) (*PlatformStats, error) {
	_, users, err := u.userRepo.List(ctx, 0, 1)
	if err != nil {
		return nil, err
	}
	profiles, err := u.profileRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	walls, err := u.wallRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.profileRepo.ListByVerificationStatus(ctx, entities.VerificationPending)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		Users:                users,
		Profiles:             profiles,
		Walls:                walls,
		PendingVerifications: int64(len(pending)),
	}, nil
}
