package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/modmarket/modmarket/internal/middlewares"
	"github.com/modmarket/modmarket/internal/models"
)

// ModuleDeleter defines the interface that the registry service must implement.
type ModuleDeleter interface {
	Delete(ctx context.Context, actor *models.UserDB, moduleID uuid.UUID) error
}

// DeleteModuleResponse represents a successful module deletion response
// swagger:model DeleteModuleResponse
type DeleteModuleResponse struct {
	// Success message
	// default: Module deleted
	Message string `json:"message"`
}

// NewDeleteModuleHandler returns an HTTP handler for deleting a module.
// Install records referencing the module go with it.
// @Summary Delete module
// @Description Removes the module and all install records referencing it. Requires the caller to be the module's owner and a developer.
// @Tags modules
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} handlers.DeleteModuleResponse "Module deleted"
// @Failure 401 {object} handlers.UpdateModuleErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateModuleErrorResponse "Not the owning developer"
// @Failure 404 {object} handlers.UpdateModuleErrorResponse "Module not found"
// @Router /modules/{id} [delete]
// @Security BearerAuth
func NewDeleteModuleHandler(svc ModuleDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID, err := parseModuleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateModuleErrorResponse{
				Error: "Module not found",
			})
			return
		}

		actor := middlewares.GetUserFromContext(r.Context())

		if err := svc.Delete(r.Context(), actor, moduleID); err != nil {
			writeModuleMutationError(w, moduleID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteModuleResponse{
			Message: "Module deleted",
		})
	}
}
