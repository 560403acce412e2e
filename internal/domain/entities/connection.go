package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ConnectionStatus represents the state of a connection request
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionDeclined ConnectionStatus = "declined"
)

// Connection is a networking request between two profiles.
type Connection struct {
	ID         uuid.UUID        `json:"id"`
	SenderID   uuid.UUID        `json:"sender_id"`
	ReceiverID uuid.UUID        `json:"receiver_id"`
	Message    null.String      `json:"message,omitempty"`
	Status     ConnectionStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}

// CreateConnectionInput carries connection request fields
type CreateConnectionInput struct {
	ReceiverID string `json:"receiver_id" binding:"required,uuid"`
	Message    string `json:"message"`
}

// UpdateConnectionStatusInput carries the receiver's decision
type UpdateConnectionStatusInput struct {
	Status string `json:"status" binding:"required,oneof=accepted declined"`
}
