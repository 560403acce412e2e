package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TeamMember links an artist profile to a studio wall. At most one
// record may exist per (wall, artist) pair.
type TeamMember struct {
	ID           uuid.UUID       `json:"id"`
	StudioWallID uuid.UUID       `json:"studio_wall_id"`
	ArtistID     uuid.UUID       `json:"artist_id"`
	Role         null.String     `json:"role,omitempty"`
	Artist       *ProfileSummary `json:"artist,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AddTeamMemberInput carries team membership creation fields
type AddTeamMemberInput struct {
	StudioWallID string `json:"studio_wall_id" binding:"required,uuid"`
	ArtistID     string `json:"artist_id" binding:"required,uuid"`
	Role         string `json:"role"`
}
