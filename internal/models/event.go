package models

import "github.com/google/uuid"

// Marketplace event types published to the event stream.
const (
	EventModuleCreated   = "module_created"
	EventModuleUpdated   = "module_updated"
	EventModuleDeleted   = "module_deleted"
	EventModuleRun       = "module_run"
	EventModuleInstalled = "module_installed"
	EventModuleRemoved   = "module_uninstalled"
)

// Event is a fire-and-forget marketplace event. Delivery failures never
// block the primary operation.
type Event struct {
	EventID   string     `json:"event_id"`
	Type      string     `json:"type"`
	ModuleID  uuid.UUID  `json:"module_id"`
	ActorID   *uuid.UUID `json:"actor_id,omitempty"`
	Timestamp int64      `json:"timestamp"`
}
