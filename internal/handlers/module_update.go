package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/middlewares"
	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/services"
)

// ModuleUpdater defines the interface that the registry service must implement.
type ModuleUpdater interface {
	Update(ctx context.Context, actor *models.UserDB, moduleID uuid.UUID, name, description, script string, inputs models.InputFields) (*models.ModuleDB, error)
}

// UpdateModuleRequest represents the JSON body for replacing a module's
// mutable fields
// swagger:model UpdateModuleRequest
type UpdateModuleRequest struct {
	// Display name
	// required: true
	// default: image-resizer
	Name string `json:"name"`

	// Free-text description
	Description string `json:"description"`

	// Script body
	// required: true
	Script string `json:"script"`

	// Ordered input definitions
	Inputs models.InputFields `json:"inputs"`
}

// UpdateModuleResponse represents a successful module update response
// swagger:model UpdateModuleResponse
type UpdateModuleResponse struct {
	// Updated module
	Module ModulePayload `json:"module"`
}

// UpdateModuleErrorResponse represents an error response for module update
// swagger:model UpdateModuleErrorResponse
type UpdateModuleErrorResponse struct {
	// Error message
	// default: Developer and ownership rights required
	Error string `json:"error"`
}

// NewUpdateModuleHandler returns an HTTP handler for updating a module.
// Only the owning developer may update; run and install counts are not
// touched.
// @Summary Update module
// @Description Replaces the module's name, description, script, and inputs. Requires the caller to be the module's owner and a developer.
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param updateModuleRequest body handlers.UpdateModuleRequest true "New module contents"
// @Success 200 {object} handlers.UpdateModuleResponse "Module updated"
// @Failure 400 {object} handlers.UpdateModuleErrorResponse "Invalid request body or empty script"
// @Failure 401 {object} handlers.UpdateModuleErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateModuleErrorResponse "Not the owning developer"
// @Failure 404 {object} handlers.UpdateModuleErrorResponse "Module not found"
// @Router /modules/{id} [put]
// @Security BearerAuth
func NewUpdateModuleHandler(svc ModuleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID, err := parseModuleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
				Error: "Module not found",
			})
			return
		}

		var req UpdateModuleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		actor := middlewares.GetUserFromContext(r.Context())

		module, err := svc.Update(r.Context(), actor, moduleID, req.Name, req.Description, req.Script, req.Inputs)
		if err != nil {
			writeModuleMutationError(w, moduleID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateModuleResponse{
			Module: newModulePayload(module),
		})
	}
}

// writeModuleMutationError maps registry mutation errors to HTTP statuses,
// shared by the update and delete handlers.
func writeModuleMutationError(w http.ResponseWriter, moduleID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
			Error: "Unauthorized",
		})
	case errors.Is(err, services.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
			Error: "Developer and ownership rights required",
		})
	case errors.Is(err, services.ErrModuleNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
			Error: "Module not found",
		})
	case errors.Is(err, services.ErrEmptyScript):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
			Error: "Script must not be empty",
		})
	default:
		logger.Log.Errorw("failed to mutate module", "moduleID", moduleID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
			Error: "Internal server error",
		})
	}
}
