package entities

import (
	"time"

	"github.com/google/uuid"
)

// Project is a single portfolio item on a wall. OrderIndex controls
// display order, ascending.
type Project struct {
	ID          uuid.UUID `json:"id"`
	WallID      uuid.UUID `json:"wall_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	MediaURL    string    `json:"media_url,omitempty"`
	MediaType   string    `json:"media_type,omitempty"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectInput carries project creation fields
type CreateProjectInput struct {
	WallID      string `json:"wall_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	MediaURL    string `json:"media_url"`
	MediaType   string `json:"media_type"`
	OrderIndex  int    `json:"order_index"`
}

// UpdateProjectInput is the allow-listed partial update for a project
type UpdateProjectInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	MediaURL    *string `json:"media_url,omitempty"`
	MediaType   *string `json:"media_type,omitempty"`
	OrderIndex  *int    `json:"order_index,omitempty"`
}
