package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pikxora.backend/internal/domain/entities"
	domainerrors "pikxora.backend/internal/domain/errors"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/internal/infrastructure/models"
)

type WallRepository struct {
	db *gorm.DB
}

func NewWallRepository(db *gorm.DB) *WallRepository {
	return &WallRepository{db: db}
}

func (r *WallRepository) Create(ctx context.Context, wall *entities.Wall) error {
	m := r.toModel(wall)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	wall.CreatedAt = m.CreatedAt
	wall.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *WallRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Wall, error) {
	var m models.Wall
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *WallRepository) ListPublished(ctx context.Context) ([]*entities.Wall, error) {
	var ms []models.Wall
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *WallRepository) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entities.Wall, error) {
	var ms []models.Wall
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *WallRepository) Update(ctx context.Context, wall *entities.Wall) error {
	updates := map[string]interface{}{
		"title":            wall.Title,
		"description":      wall.Description,
		"tagline":          wall.Tagline,
		"journey_content":  wall.JourneyContent,
		"logo_url":         wall.LogoURL,
		"hero_media_url":   wall.HeroMediaURL,
		"hero_media_type":  string(wall.HeroMediaType),
		"showreel_url":     wall.ShowreelURL,
		"showreel_type":    string(wall.ShowreelType),
		"brand_primary":    wall.BrandColors.Primary,
		"brand_secondary":  wall.BrandColors.Secondary,
		"social_twitter":   wall.SocialLinks.Twitter,
		"social_linkedin":  wall.SocialLinks.LinkedIn,
		"social_instagram": wall.SocialLinks.Instagram,
		"social_website":   wall.SocialLinks.Website,
		"awards":           encodeStrings(wall.Awards),
		"published":        wall.Published,
		"updated_at":       time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Wall{}).
		Where("id = ?", wall.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *WallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Wall{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementViewCount bumps the counter in a single SQL expression, so
// concurrent increments serialize at the database and none are lost.
func (r *WallRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.Wall{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, domainerrors.ErrNotFound
	}

	var count int64
	if err := db.Model(&models.Wall{}).Where("id = ?", id).Pluck("view_count", &count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListMediaRefs returns every stored upload path referenced by a wall
// media column. Inline payloads and embed links are filtered out by the
// path-prefix predicate.
func (r *WallRepository) ListMediaRefs(ctx context.Context) ([]string, error) {
	var ms []models.Wall
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Select("logo_url", "hero_media_url", "showreel_url").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	refs := make([]string, 0)
	for i := range ms {
		for _, v := range []string{ms[i].LogoURL, ms[i].HeroMediaURL, ms[i].ShowreelURL} {
			if media.IsStoredRef(v) {
				refs = append(refs, v)
			}
		}
	}
	return refs, nil
}

func (r *WallRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Wall{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *WallRepository) toEntities(ms []models.Wall) []*entities.Wall {
	items := make([]*entities.Wall, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *WallRepository) toEntity(m *models.Wall) *entities.Wall {
	return &entities.Wall{
		ID:             m.ID,
		ProfileID:      m.ProfileID,
		Title:          m.Title,
		Description:    m.Description,
		Tagline:        m.Tagline,
		JourneyContent: m.JourneyContent,
		LogoURL:        m.LogoURL,
		HeroMediaURL:   m.HeroMediaURL,
		HeroMediaType:  entities.HeroMediaType(m.HeroMediaType),
		ShowreelURL:    m.ShowreelURL,
		ShowreelType:   entities.ShowreelType(m.ShowreelType),
		BrandColors: entities.BrandColors{
			Primary:   m.BrandPrimary,
			Secondary: m.BrandSecondary,
		},
		SocialLinks: entities.SocialLinks{
			Twitter:   m.SocialTwitter,
			LinkedIn:  m.SocialLinkedIn,
			Instagram: m.SocialInstagram,
			Website:   m.SocialWebsite,
		},
		Awards:    decodeStrings(m.Awards),
		Published: m.Published,
		ViewCount: m.ViewCount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *WallRepository) toModel(e *entities.Wall) *models.Wall {
	return &models.Wall{
		ID:              e.ID,
		ProfileID:       e.ProfileID,
		Title:           e.Title,
		Description:     e.Description,
		Tagline:         e.Tagline,
		JourneyContent:  e.JourneyContent,
		LogoURL:         e.LogoURL,
		HeroMediaURL:    e.HeroMediaURL,
		HeroMediaType:   string(e.HeroMediaType),
		ShowreelURL:     e.ShowreelURL,
		ShowreelType:    string(e.ShowreelType),
		BrandPrimary:    e.BrandColors.Primary,
		BrandSecondary:  e.BrandColors.Secondary,
		SocialTwitter:   e.SocialLinks.Twitter,
		SocialLinkedIn:  e.SocialLinks.LinkedIn,
		SocialInstagram: e.SocialLinks.Instagram,
		SocialWebsite:   e.SocialLinks.Website,
		Awards:          encodeStrings(e.Awards),
		Published:       e.Published,
		ViewCount:       e.ViewCount,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
