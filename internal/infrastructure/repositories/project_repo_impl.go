package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/internal/infrastructure/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	m := r.toModel(project)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	project.CreatedAt = m.CreatedAt
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) ListByWall(ctx context.Context, wallID uuid.UUID) ([]*entities.Project, error) {
	var ms []models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("wall_id = ?", wallID).
		Order("order_index ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	updates := map[string]interface{}{
		"title":       project.Title,
		"description": project.Description,
		"category":    project.Category,
		"media_url":   project.MediaURL,
		"media_type":  project.MediaType,
		"order_index": project.OrderIndex,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) ListMediaRefs(ctx context.Context) ([]string, error) {
	var ms []models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Select("media_url").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	refs := make([]string, 0)
	for i := range ms {
		if media.IsStoredRef(ms[i].MediaURL) {
			refs = append(refs, ms[i].MediaURL)
		}
	}
	return refs, nil
}

// DeleteByWall removes every project on the given wall. Used by the
// cascading wall delete; missing rows are not an error here.
func (r *ProjectRepository) DeleteByWall(ctx context.Context, wallID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Project{}, "wall_id = ?", wallID).Error
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:          m.ID,
		WallID:      m.WallID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		MediaURL:    m.MediaURL,
		MediaType:   m.MediaType,
		OrderIndex:  m.OrderIndex,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *ProjectRepository) toModel(e *entities.Project) *models.Project {
	return &models.Project{
		ID:          e.ID,
		WallID:      e.WallID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		MediaURL:    e.MediaURL,
		MediaType:   e.MediaType,
		OrderIndex:  e.OrderIndex,
		CreatedAt:   e.CreatedAt,
	}
}
