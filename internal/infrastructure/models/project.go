package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WallID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(80)"`
	MediaURL    string    `gorm:"type:text"`
	MediaType   string    `gorm:"type:varchar(10)"`
	OrderIndex  int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}
