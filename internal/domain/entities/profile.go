package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents platform roles
type UserRole string

const (
	UserRoleStudio   UserRole = "studio"
	UserRoleArtist   UserRole = "artist"
	UserRoleInvestor UserRole = "investor"
	UserRoleAdmin    UserRole = "admin"
)

// VerificationStatus represents profile verification state
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// User represents an authentication account
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// Profile represents a user's public identity. Walls reference profiles,
// not users, so display data stays separate from credentials.
type Profile struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"user_id"`
	Name               string             `json:"name"`
	Role               UserRole           `json:"role"`
	Bio                string             `json:"bio,omitempty"`
	Location           string             `json:"location,omitempty"`
	AvatarURL          string             `json:"avatar_url,omitempty"`
	Associations       []string           `json:"associations"`
	Rating             null.Float64       `json:"rating,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ProfileSummary is the owner display subset attached to walls.
type ProfileSummary struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Rating       null.Float64 `json:"rating,omitempty"`
	Location     string       `json:"location,omitempty"`
	Associations []string     `json:"associations"`
}

// Summary trims a profile to its wall display fields.
func (p *Profile) Summary(email string) *ProfileSummary {
	return &ProfileSummary{
		ID:           p.ID,
		Name:         p.Name,
		Email:        email,
		Rating:       p.Rating,
		Location:     p.Location,
		Associations: p.Associations,
	}
}

// RegisterInput represents input for registration
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Role     string `json:"role" binding:"required,oneof=studio artist investor"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         *User    `json:"user"`
	Profile      *Profile `json:"profile"`
}

// UpdateProfileInput is the allow-listed partial update for a profile.
// Nil pointers leave the stored value unchanged.
type UpdateProfileInput struct {
	Name         *string   `json:"name,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Location     *string   `json:"location,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Associations *[]string `json:"associations,omitempty"`
}
