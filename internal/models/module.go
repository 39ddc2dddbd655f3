package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InputField describes one entry of a module's ordered input-definition list.
type InputField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// InputFields is the serialized input-definition list, stored as a single
// JSONB column. Order is preserved.
type InputFields []InputField

// Value implements driver.Valuer for JSONB storage.
func (f InputFields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (f *InputFields) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("unsupported type %T for InputFields", src)
	}
}

// ModuleDB represents a module record in the database
type ModuleDB struct {
	ModuleID    uuid.UUID   `json:"module_id" db:"module_id"`     // Primary key
	Name        string      `json:"name" db:"name"`               // Display name
	Description string      `json:"description" db:"description"` // Optional free text
	Script      string      `json:"script" db:"script"`           // Script body, never empty
	Inputs      InputFields `json:"inputs" db:"inputs"`           // Ordered input definitions
	RunCount    int64       `json:"run_count" db:"run_count"`     // Monotonically non-decreasing
	OwnerID     *uuid.UUID  `json:"owner_id" db:"owner_id"`       // NULL for legacy ownerless modules
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// ModuleWithCounts is a module annotated with live aggregates from the
// installation ledger, recomputed per query.
type ModuleWithCounts struct {
	ModuleDB
	InstallCount       int `json:"install_count" db:"install_count"`
	RecentInstallCount int `json:"recent_install_count" db:"recent_install_count"`
}

// InstalledModule is a module as seen from a user's install list: global
// install count plus the resolved owner's username, empty when the module
// is ownerless or the owner no longer exists.
type InstalledModule struct {
	ModuleDB
	InstallCount   int       `json:"install_count" db:"install_count"`
	AuthorUsername string    `json:"author_username" db:"author_username"`
	InstalledAt    time.Time `json:"installed_at" db:"installed_at"`
}
