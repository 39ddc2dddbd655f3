package models

import (
	"time"

	"github.com/google/uuid"
)

// InstallDB represents an install record: the durable fact that a user has
// installed a module. At most one record exists per (user, module) pair,
// enforced by the composite primary key at the store layer.
type InstallDB struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	ModuleID    uuid.UUID `json:"module_id" db:"module_id"`
	InstalledAt time.Time `json:"installed_at" db:"installed_at"`
}
