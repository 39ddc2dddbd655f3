package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionDB represents a bearer session record in the database.
// Sessions are never revoked or swept; a session is invalid once
// now >= ExpiresAt, checked lazily on every authenticated request.
type SessionDB struct {
	SessionID uuid.UUID `json:"session_id" db:"session_id"` // Primary key
	Token     string    `json:"token" db:"token"`           // Unique opaque bearer token
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Issue timestamp
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // Lazy expiry boundary
}
