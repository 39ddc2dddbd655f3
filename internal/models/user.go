package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Case-insensitively unique username
	PasswordHash string    `json:"-" db:"password_hash"`           // Salted one-way hash
	PasswordSalt string    `json:"-" db:"password_salt"`           // Per-user random salt
	IsDeveloper  bool      `json:"is_developer" db:"is_developer"` // Grants module authoring rights
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// Profile is the identity projection returned to an authenticated caller.
type Profile struct {
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	IsDeveloper bool      `json:"is_developer"`
	CreatedAt   time.Time `json:"created_at"`
}
