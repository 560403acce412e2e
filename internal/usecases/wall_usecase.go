package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/domain/repositories"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/pkg/logger"
	"pikxora.backend/pkg/redis"
	"pikxora.backend/pkg/utils"
)

const (
	publishedWallsCacheKey = "walls:published"
	publishedWallsCacheTTL = 30 * time.Second
)

// WallUsecase handles wall business logic: ownership checks, media
// normalization on both write and read paths, and the cascade delete.
type WallUsecase struct {
	wallRepo    repositories.WallRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	teamRepo    repositories.TeamMemberRepository
	uow         repositories.UnitOfWork
	normalizer  mediaNormalizer
}

// NewWallUsecase creates a new wall usecase
func NewWallUsecase(
	wallRepo repositories.WallRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	teamRepo repositories.TeamMemberRepository,
	uow repositories.UnitOfWork,
	codec *media.Codec,
	maxImageMB int,
) *WallUsecase {
	return &WallUsecase{
		wallRepo:    wallRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
		uow:         uow,
		normalizer:  newMediaNormalizer(codec, maxImageMB),
	}
}

// ListPublished returns all published walls, newest first, with owner
// display fields attached and media resolved. The assembled result is
// cached briefly in redis; cache failures fall through to the database.
func (u *WallUsecase) ListPublished(ctx context.Context) ([]*entities.Wall, error) {
	if cached, ok := u.cachedPublished(ctx); ok {
		return cached, nil
	}

	walls, err := u.wallRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		u.attachOwner(ctx, w)
		u.resolveWallMedia(ctx, w)
	}

	u.cachePublished(ctx, walls)
	return walls, nil
}

// ListByProfile returns every wall owned by the given profile,
// regardless of published state, with media resolved.
func (u *WallUsecase) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.Wall, error) {
	walls, err := u.wallRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		u.resolveWallMedia(ctx, w)
	}
	return walls, nil
}

// GetByID returns a single wall with owner attached and media resolved.
func (u *WallUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wall, error) {
	wall, err := u.wallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.attachOwner(ctx, wall)
	u.resolveWallMedia(ctx, wall)
	return wall, nil
}

// Create persists a new wall owned by the caller's profile. Each media
// field is normalized: inline payloads are size-checked and stored as
// submitted, stored refs are resolved to inline, embed links pass
// through unchanged.
func (u *WallUsecase) Create(ctx context.Context, profileID uuid.UUID, input *entities.CreateWallInput) (*entities.Wall, error) {
	if _, err := u.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	logoURL, err := u.normalizer.normalizeWrite(input.LogoURL)
	if err != nil {
		return nil, err
	}
	heroURL, err := u.normalizer.normalizeWrite(input.HeroMediaURL)
	if err != nil {
		return nil, err
	}
	showreelURL, err := u.normalizer.normalizeWrite(input.ShowreelURL)
	if err != nil {
		return nil, err
	}

	wall := &entities.Wall{
		ID:             utils.GenerateUUIDv7(),
		ProfileID:      profileID,
		Title:          input.Title,
		Description:    input.Description,
		Tagline:        input.Tagline,
		JourneyContent: input.JourneyContent,
		LogoURL:        logoURL,
		HeroMediaURL:   heroURL,
		HeroMediaType:  entities.HeroMediaType(input.HeroMediaType),
		ShowreelURL:    showreelURL,
		ShowreelType:   entities.ShowreelType(input.ShowreelType),
		BrandColors:    input.BrandColors,
		SocialLinks:    input.SocialLinks,
		Awards:         input.Awards,
		Published:      input.Published,
	}

	if err := u.wallRepo.Create(ctx, wall); err != nil {
		return nil, err
	}

	u.invalidatePublished(ctx)
	u.attachOwner(ctx, wall)
	u.resolveWallMedia(ctx, wall)
	return wall, nil
}

// Update applies an allow-listed partial update. Only the owner may
// mutate; absent fields are left unchanged; present media fields go
// through the same normalization as create.
func (u *WallUsecase) Update(ctx context.Context, profileID, wallID uuid.UUID, input *entities.UpdateWallInput) (*entities.Wall, error) {
	wall, err := u.wallRepo.GetByID(ctx, wallID)
	if err != nil {
		return nil, err
	}
	if wall.ProfileID != profileID {
		return nil, domainerrors.ErrForbidden
	}

	if input.Title != nil {
		wall.Title = *input.Title
	}
	if input.Description != nil {
		wall.Description = *input.Description
	}
	if input.Tagline != nil {
		wall.Tagline = *input.Tagline
	}
	if input.JourneyContent != nil {
		wall.JourneyContent = *input.JourneyContent
	}
	if input.LogoURL != nil {
		normalized, err := u.normalizer.normalizeWrite(*input.LogoURL)
		if err != nil {
			return nil, err
		}
		wall.LogoURL = normalized
	}
	if input.HeroMediaURL != nil {
		normalized, err := u.normalizer.normalizeWrite(*input.HeroMediaURL)
		if err != nil {
			return nil, err
		}
		wall.HeroMediaURL = normalized
	}
	if input.HeroMediaType != nil {
		wall.HeroMediaType = entities.HeroMediaType(*input.HeroMediaType)
	}
	if input.ShowreelURL != nil {
		normalized, err := u.normalizer.normalizeWrite(*input.ShowreelURL)
		if err != nil {
			return nil, err
		}
		wall.ShowreelURL = normalized
	}
	if input.ShowreelType != nil {
		wall.ShowreelType = entities.ShowreelType(*input.ShowreelType)
	}
	if input.BrandColors != nil {
		wall.BrandColors = *input.BrandColors
	}
	if input.SocialLinks != nil {
		wall.SocialLinks = *input.SocialLinks
	}
	if input.Awards != nil {
		wall.Awards = *input.Awards
	}
	if input.Published != nil {
		wall.Published = *input.Published
	}

	if err := u.wallRepo.Update(ctx, wall); err != nil {
		return nil, err
	}

	u.invalidatePublished(ctx)

	updated, err := u.wallRepo.GetByID(ctx, wallID)
	if err != nil {
		return nil, err
	}
	u.attachOwner(ctx, updated)
	u.resolveWallMedia(ctx, updated)
	return updated, nil
}

// Delete removes a wall along with its projects and team members in one
// transaction. Only the owner may delete.
func (u *WallUsecase) Delete(ctx context.Context, profileID, wallID uuid.UUID) error {
	wall, err := u.wallRepo.GetByID(ctx, wallID)
	if err != nil {
		return err
	}
	if wall.ProfileID != profileID {
		return domainerrors.ErrForbidden
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.projectRepo.DeleteByWall(txCtx, wallID); err != nil {
			return err
		}
		if err := u.teamRepo.DeleteByWall(txCtx, wallID); err != nil {
			return err
		}
		return u.wallRepo.Delete(txCtx, wallID)
	})
	if err != nil {
		return err
	}

	u.invalidatePublished(ctx)
	return nil
}

// IncrementView bumps the wall's view counter atomically and returns
// the new value.
func (u *WallUsecase) IncrementView(ctx context.Context, wallID uuid.UUID) (int64, error) {
	return u.wallRepo.IncrementViewCount(ctx, wallID)
}

// ListProjects returns the wall's projects in display order.
func (u *WallUsecase) ListProjects(ctx context.Context, wallID uuid.UUID) ([]*entities.Project, error) {
	if _, err := u.wallRepo.GetByID(ctx, wallID); err != nil {
		return nil, err
	}
	projects, err := u.projectRepo.ListByWall(ctx, wallID)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		p.MediaURL = u.normalizer.resolveRead(ctx, p.MediaURL)
	}
	return projects, nil
}

func (u *WallUsecase) resolveWallMedia(ctx context.Context, w *entities.Wall) {
	w.LogoURL = u.normalizer.resolveRead(ctx, w.LogoURL)
	w.HeroMediaURL = u.normalizer.resolveRead(ctx, w.HeroMediaURL)
	w.ShowreelURL = u.normalizer.resolveRead(ctx, w.ShowreelURL)
}

// attachOwner decorates a wall with its owner's display fields. Owner
// enrichment is best effort display data, so failures log and continue.
func (u *WallUsecase) attachOwner(ctx context.Context, w *entities.Wall) {
	profile, err := u.profileRepo.GetByID(ctx, w.ProfileID)
	if err != nil {
		logger.Warn(ctx, "wall owner lookup failed",
			zap.String("wall_id", w.ID.String()),
			zap.Error(err))
		return
	}
	email := ""
	if user, err := u.userRepo.GetByID(ctx, profile.UserID); err == nil {
		email = user.Email
	}
	w.Owner = profile.Summary(email)
}

func (u *WallUsecase) cachedPublished(ctx context.Context) ([]*entities.Wall, bool) {
	if redis.GetClient() == nil {
		return nil, false
	}
	raw, err := redis.Get(ctx, publishedWallsCacheKey)
	if err != nil {
		return nil, false
	}
	var walls []*entities.Wall
	if err := json.Unmarshal([]byte(raw), &walls); err != nil {
		return nil, false
	}
	return walls, true
}

func (u *WallUsecase) cachePublished(ctx context.Context, walls []*entities.Wall) {
	if redis.GetClient() == nil {
		return
	}
	data, err := json.Marshal(walls)
	if err != nil {
		return
	}
	if err := redis.Set(ctx, publishedWallsCacheKey, string(data), publishedWallsCacheTTL); err != nil {
		logger.Debug(ctx, "published walls cache write failed", zap.Error(err))
	}
}

func (u *WallUsecase) invalidatePublished(ctx context.Context) {
	if redis.GetClient() == nil {
		return
	}
	if err := redis.Del(ctx, publishedWallsCacheKey); err != nil {
		logger.Debug(ctx, "published walls cache invalidation failed", zap.Error(err))
	}
}
