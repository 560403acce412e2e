package usecases

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
	"pikxora.backend/internal/domain/repositories"
)

// ProfileUsecase handles profile reads and owner updates
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(profileRepo repositories.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

// List returns profiles, optionally filtered by role.
func (u *ProfileUsecase) List(ctx context.Context, role string) ([]*entities.Profile, error) {
	return u.profileRepo.List(ctx, role)
}

// GetByID returns a single profile
func (u *ProfileUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByID(ctx, id)
}

// Update applies a partial update to the caller's own profile. Only
// allow-listed display fields can change; role and verification status
// are not reachable from here.
func (u *ProfileUsecase) Update(ctx context.Context, profileID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Associations != nil {
		profile.Associations = *input.Associations
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return u.profileRepo.GetByID(ctx, profileID)
}
