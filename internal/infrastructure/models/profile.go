package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name               string    `gorm:"type:varchar(120);not null"`
	Role               string    `gorm:"type:varchar(20);not null"`
	Bio                string    `gorm:"type:text"`
	Location           string    `gorm:"type:varchar(120)"`
	AvatarURL          string    `gorm:"type:text"`
	Associations       string    `gorm:"type:text"` // JSON-encoded []string
	Rating             *float64
	VerificationStatus string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
