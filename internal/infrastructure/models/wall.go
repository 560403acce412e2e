package models

import (
	"time"

	"github.com/google/uuid"
)

type Wall struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID       uuid.UUID `gorm:"type:uuid;index;not null"`
	Title           string    `gorm:"type:varchar(200);not null"`
	Description     string    `gorm:"type:text"`
	Tagline         string    `gorm:"type:varchar(300)"`
	JourneyContent  string    `gorm:"type:text"`
	LogoURL         string    `gorm:"type:text"`
	HeroMediaURL    string    `gorm:"type:text"`
	HeroMediaType   string    `gorm:"type:varchar(10)"`
	ShowreelURL     string    `gorm:"type:text"`
	ShowreelType    string    `gorm:"type:varchar(10)"`
	BrandPrimary    string    `gorm:"type:varchar(20)"`
	BrandSecondary  string    `gorm:"type:varchar(20)"`
	SocialTwitter   string    `gorm:"type:text"`
	SocialLinkedIn  string    `gorm:"column:social_linkedin;type:text"`
	SocialInstagram string    `gorm:"type:text"`
	SocialWebsite   string    `gorm:"type:text"`
	Awards          string    `gorm:"type:text"` // JSON-encoded []string, order preserved
	Published       bool      `gorm:"not null;default:false"`
	ViewCount       int64     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
