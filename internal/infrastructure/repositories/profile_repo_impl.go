package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/infrastructure/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	m := r.toModel(profile)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProfileRepository) List(ctx context.Context, role string) ([]*entities.Profile, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var ms []models.Profile
	if err := query.Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Profile, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProfileRepository) ListByVerificationStatus(ctx context.Context, status entities.VerificationStatus) ([]*entities.Profile, error) {
	var ms []models.Profile
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("verification_status = ?", string(status)).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Profile, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entities.Profile) error {
	updates := map[string]interface{}{
		"name":         profile.Name,
		"bio":          profile.Bio,
		"location":     profile.Location,
		"avatar_url":   profile.AvatarURL,
		"associations": encodeStrings(profile.Associations),
		"updated_at":   time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", profile.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status": string(status),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ProfileRepository) toEntity(m *models.Profile) *entities.Profile {
	rating := null.Float64{}
	if m.Rating != nil {
		rating = null.Float64From(*m.Rating)
	}
	return &entities.Profile{
		ID:                 m.ID,
		UserID:             m.UserID,
		Name:               m.Name,
		Role:               entities.UserRole(m.Role),
		Bio:                m.Bio,
		Location:           m.Location,
		AvatarURL:          m.AvatarURL,
		Associations:       decodeStrings(m.Associations),
		Rating:             rating,
		VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func (r *ProfileRepository) toModel(e *entities.Profile) *models.Profile {
	var rating *float64
	if e.Rating.Valid {
		v := e.Rating.Float64
		rating = &v
	}
	return &models.Profile{
		ID:                 e.ID,
		UserID:             e.UserID,
		Name:               e.Name,
		Role:               string(e.Role),
		Bio:                e.Bio,
		Location:           e.Location,
		AvatarURL:          e.AvatarURL,
		Associations:       encodeStrings(e.Associations),
		Rating:             rating,
		VerificationStatus: string(e.VerificationStatus),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
