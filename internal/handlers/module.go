package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/modmarket/modmarket/internal/models"
)

// ModulePayload is the JSON projection of a module shared by the module
// endpoints
// swagger:model ModulePayload
type ModulePayload struct {
	// Module identifier
	ModuleID string `json:"module_id"`

	// Display name
	// default: image-resizer
	Name string `json:"name"`

	// Free-text description
	Description string `json:"description"`

	// Script body
	Script string `json:"script"`

	// Ordered input definitions
	Inputs models.InputFields `json:"inputs"`

	// Total recorded runs
	RunCount int64 `json:"run_count"`

	// Owner identifier, empty for ownerless modules
	OwnerID string `json:"owner_id,omitempty"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`

	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at"`
}

func newModulePayload(m *models.ModuleDB) ModulePayload {
	p := ModulePayload{
		ModuleID:    m.ModuleID.String(),
		Name:        m.Name,
		Description: m.Description,
		Script:      m.Script,
		Inputs:      m.Inputs,
		RunCount:    m.RunCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.OwnerID != nil {
		p.OwnerID = m.OwnerID.String()
	}
	return p
}

// parseModuleID extracts the {id} URL parameter as a UUID.
func parseModuleID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
