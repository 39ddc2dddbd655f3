package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/middlewares"
	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/services"
)

// ModuleCreator defines the interface that the registry service must implement.
type ModuleCreator interface {
	Create(ctx context.Context, actor *models.UserDB, name, description, script string, inputs models.InputFields) (*models.ModuleDB, error)
}

// CreateModuleRequest represents the JSON body for publishing a module
// swagger:model CreateModuleRequest
type CreateModuleRequest struct {
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

// CreateModuleResponse represents a successful module creation response
// swagger:model CreateModuleResponse
type CreateModuleResponse struct {
	// Created module
	Module ModulePayload `json:"module"`
}

// CreateModuleErrorResponse represents an error response for module creation
// swagger:model CreateModuleErrorResponse
type CreateModuleErrorResponse struct {
	// Error message
	// default: Script must not be empty
	Error string `json:"error"`
}

// NewCreateModuleHandler returns an HTTP handler for publishing a module.
// Authentication is optional: anonymous callers produce ownerless modules.
// @Summary Publish a module
// @Description Creates a new module. When a session token is presented, the caller becomes the owner; otherwise the module is ownerless.
// @Tags modules
// @Accept json
// @Produce json
// @Param createModuleRequest body handlers.CreateModuleRequest true "Module to publish"
// @Success 201 {object} handlers.CreateModuleResponse "Module created"
// @Failure 400 {object} handlers.CreateModuleErrorResponse "Invalid request body or empty script"
// @Router /modules [post]
// @Security BearerAuth
func NewCreateModuleHandler(svc ModuleCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateModuleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateModuleErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		actor := middlewares.GetUserFromContext(r.Context())

		module, err := svc.Create(r.Context(), actor, req.Name, req.Description, req.Script, req.Inputs)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyScript):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateModuleErrorResponse{
					Error: "Script must not be empty",
				})
			default:
				logger.Log.Errorw("failed to create module", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateModuleErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateModuleResponse{
			Module: newModulePayload(module),
		})
	}
}
