package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/domain/repositories"
	"pikxora.backend/pkg/logger"
	"pikxora.backend/pkg/utils"
)

// TeamUsecase handles studio wall team rosters
type TeamUsecase struct {
	teamRepo    repositories.TeamMemberRepository
	wallRepo    repositories.WallRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

// NewTeamUsecase creates a new team usecase
func NewTeamUsecase(
	teamRepo repositories.TeamMemberRepository,
	wallRepo repositories.WallRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) *TeamUsecase {
	return &TeamUsecase{
		teamRepo:    teamRepo,
		wallRepo:    wallRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// ListByWall returns a wall's team with artist display fields attached.
func (u *TeamUsecase) ListByWall(ctx context.Context, wallID uuid.UUID) ([]*entities.TeamMember, error) {
	if _, err := u.wallRepo.GetByID(ctx, wallID); err != nil {
		return nil, err
	}
	members, err := u.teamRepo.ListByWall(ctx, wallID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		u.attachArtist(ctx, m)
	}
	return members, nil
}

// Add links an artist profile to a wall owned by the caller. A pair may
// appear on a roster at most once.
func (u *TeamUsecase) Add(ctx context.Context, profileID uuid.UUID, input *entities.AddTeamMemberInput) (*entities.TeamMember, error) {
	wallID, err := uuid.Parse(input.StudioWallID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	artistID, err := uuid.Parse(input.ArtistID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	wall, err := u.wallRepo.GetByID(ctx, wallID)
	if err != nil {
		return nil, err
	}
	if wall.ProfileID != profileID {
		return nil, domainerrors.ErrForbidden
	}
	if _, err := u.profileRepo.GetByID(ctx, artistID); err != nil {
		return nil, err
	}

	member := &entities.TeamMember{
		ID:           utils.GenerateUUIDv7(),
		StudioWallID: wallID,
		ArtistID:     artistID,
	}
	if input.Role != "" {
		member.Role = null.StringFrom(input.Role)
	}

	if err := u.teamRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	u.attachArtist(ctx, member)
	return member, nil
}

// Remove takes an artist off a roster on a wall owned by the caller.
func (u *TeamUsecase) Remove(ctx context.Context, profileID, memberID uuid.UUID) error {
	member, err := u.teamRepo.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	wall, err := u.wallRepo.GetByID(ctx, member.StudioWallID)
	if err != nil {
		return err
	}
	if wall.ProfileID != profileID {
		return domainerrors.ErrForbidden
	}
	return u.teamRepo.Delete(ctx, memberID)
}

func (u *TeamUsecase) attachArtist(ctx context.Context, m *entities.TeamMember) {
	profile, err := u.profileRepo.GetByID(ctx, m.ArtistID)
	if err != nil {
		logger.Warn(ctx, "team artist lookup failed",
			zap.String("member_id", m.ID.String()),
			zap.Error(err))
		return
	}
	email := ""
	if user, err := u.userRepo.GetByID(ctx, profile.UserID); err == nil {
		email = user.Email
	}
	m.Artist = profile.Summary(email)
}
