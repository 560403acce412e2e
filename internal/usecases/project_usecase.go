package usecases

import (
	"context"

	"github.com/google/uuid"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/domain/repositories"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/pkg/utils"
)

// ProjectUsecase handles project business logic. Every mutation checks
// that the caller owns the wall the project hangs off.
type ProjectUsecase struct {
	projectRepo repositories.ProjectRepository
	wallRepo    repositories.WallRepository
	normalizer  mediaNormalizer
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(
	projectRepo repositories.ProjectRepository,
	wallRepo repositories.WallRepository,
	codec *media.Codec,
	maxImageMB int,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo: projectRepo,
		wallRepo:    wallRepo,
		normalizer:  newMediaNormalizer(codec, maxImageMB),
	}
}

// Create adds a project to a wall owned by the caller.
func (u *ProjectUsecase) Create(ctx context.Context, profileID uuid.UUID, input *entities.CreateProjectInput) (*entities.Project, error) {
	wallID, err := uuid.Parse(input.WallID)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if err := u.requireOwnership(ctx, profileID, wallID); err != nil {
		return nil, err
	}

	mediaURL, err := u.normalizer.normalizeWrite(input.MediaURL)
	if err != nil {
		return nil, err
	}

	project := &entities.Project{
		ID:          utils.GenerateUUIDv7(),
		WallID:      wallID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		MediaURL:    mediaURL,
		MediaType:   input.MediaType,
		OrderIndex:  input.OrderIndex,
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	project.MediaURL = u.normalizer.resolveRead(ctx, project.MediaURL)
	return project, nil
}

// Update applies an allow-listed partial update to a project on a wall
// owned by the caller.
func (u *ProjectUsecase) Update(ctx context.Context, profileID, projectID uuid.UUID, input *entities.UpdateProjectInput) (*entities.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := u.requireOwnership(ctx, profileID, project.WallID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.MediaURL != nil {
		normalized, err := u.normalizer.normalizeWrite(*input.MediaURL)
		if err != nil {
			return nil, err
		}
		project.MediaURL = normalized
	}
	if input.MediaType != nil {
		project.MediaType = *input.MediaType
	}
	if input.OrderIndex != nil {
		project.OrderIndex = *input.OrderIndex
	}

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	updated, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	updated.MediaURL = u.normalizer.resolveRead(ctx, updated.MediaURL)
	return updated, nil
}

// Delete removes a project from a wall owned by the caller.
func (u *ProjectUsecase) Delete(ctx context.Context, profileID, projectID uuid.UUID) error {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if err := u.requireOwnership(ctx, profileID, project.WallID); err != nil {
		return err
	}
	return u.projectRepo.Delete(ctx, projectID)
}

func (u *ProjectUsecase) requireOwnership(ctx context.Context, profileID, wallID uuid.UUID) error {
	wall, err := u.wallRepo.GetByID(ctx, wallID)
	if err != nil {
		return err
	}
	if wall.ProfileID != profileID {
		return domainerrors.ErrForbidden
	}
	return nil
}
