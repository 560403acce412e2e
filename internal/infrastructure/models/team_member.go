package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StudioWallID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wall_artist"`
	ArtistID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wall_artist"`
	Role         *string   `gorm:"type:varchar(120)"`
	CreatedAt    time.Time
}
