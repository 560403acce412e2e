package entities

import (
	"time"

	"github.com/google/uuid"
)

// HeroMediaType distinguishes wall hero media
type HeroMediaType string

const (
	HeroMediaImage HeroMediaType = "image"
	HeroMediaVideo HeroMediaType = "video"
)

// ShowreelType distinguishes hosted embeds from uploaded video
type ShowreelType string

const (
	ShowreelEmbed  ShowreelType = "embed"
	ShowreelUpload ShowreelType = "upload"
)

// BrandColors holds a wall's palette
type BrandColors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// SocialLinks holds a wall's external links
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Wall is an owned, branded portfolio page. ViewCount only ever grows.
type Wall struct {
	ID             uuid.UUID       `json:"id"`
	ProfileID      uuid.UUID       `json:"user_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Tagline        string          `json:"tagline,omitempty"`
	JourneyContent string          `json:"journey_content,omitempty"`
	LogoURL        string          `json:"logo_url,omitempty"`
	HeroMediaURL   string          `json:"hero_media_url,omitempty"`
	HeroMediaType  HeroMediaType   `json:"hero_media_type,omitempty"`
	ShowreelURL    string          `json:"showreel_url,omitempty"`
	ShowreelType   ShowreelType    `json:"showreel_type,omitempty"`
	BrandColors    BrandColors     `json:"brand_colors"`
	SocialLinks    SocialLinks     `json:"social_links"`
	Awards         []string        `json:"awards"`
	Published      bool            `json:"published"`
	ViewCount      int64           `json:"view_count"`
	Owner          *ProfileSummary `json:"owner,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateWallInput carries wall creation fields. Media fields accept an
// inline payload, a stored upload path, or (showreel only) an embed link.
type CreateWallInput struct {
	Title          string      `json:"title" binding:"required"`
	Description    string      `json:"description"`
	Tagline        string      `json:"tagline"`
	JourneyContent string      `json:"journey_content"`
	LogoURL        string      `json:"logo_url"`
	HeroMediaURL   string      `json:"hero_media_url"`
	HeroMediaType  string      `json:"hero_media_type" binding:"omitempty,oneof=image video"`
	ShowreelURL    string      `json:"showreel_url"`
	ShowreelType   string      `json:"showreel_type" binding:"omitempty,oneof=embed upload"`
	BrandColors    BrandColors `json:"brand_colors"`
	SocialLinks    SocialLinks `json:"social_links"`
	Awards         []string    `json:"awards"`
	Published      bool        `json:"published"`
}

// UpdateWallInput is the allow-listed partial update for a wall.
// Nil pointers leave the stored value unchanged.
type UpdateWallInput struct {
	Title          *string      `json:"title,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Tagline        *string      `json:"tagline,omitempty"`
	JourneyContent *string      `json:"journey_content,omitempty"`
	LogoURL        *string      `json:"logo_url,omitempty"`
	HeroMediaURL   *string      `json:"hero_media_url,omitempty"`
	HeroMediaType  *string      `json:"hero_media_type,omitempty" binding:"omitempty,oneof=image video"`
	ShowreelURL    *string      `json:"showreel_url,omitempty"`
	ShowreelType   *string      `json:"showreel_type,omitempty" binding:"omitempty,oneof=embed upload"`
	BrandColors    *BrandColors `json:"brand_colors,omitempty"`
	SocialLinks    *SocialLinks `json:"social_links,omitempty"`
	Awards         *[]string    `json:"awards,omitempty"`
	Published      *bool        `json:"published,omitempty"`
}
