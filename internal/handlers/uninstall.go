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

// Uninstaller defines the interface that the install service must implement.
type Uninstaller interface {
	Uninstall(ctx context.Context, moduleID, userID uuid.UUID) (*models.ModuleDB, int, error)
}

// UninstallResponse represents a successful uninstallation response
// swagger:model UninstallResponse
type UninstallResponse struct {
	// Uninstalled module
	Module ModulePayload `json:"module"`

	// Refreshed install count
	// default: 0
	InstallCount int `json:"install_count"`
}

// UninstallErrorResponse represents an error response for uninstallation
// swagger:model UninstallErrorResponse
type UninstallErrorResponse struct {
	// Error message
	// default: Module is not installed
	Error string `json:"error"`
}

// NewUninstallHandler returns an HTTP handler for removing the calling
// user's installation of a module.
// @Summary Uninstall module
// @Description Removes the install record for the calling user. Uninstalling a module that is not installed yields 404.
// @Tags installs
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} handlers.UninstallResponse "Module uninstalled"
// @Failure 401 {object} handlers.UninstallErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UninstallErrorResponse "Module absent or not installed"
// @Router /modules/{id}/install [delete]
// @Security BearerAuth
func NewUninstallHandler(svc Uninstaller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID, err := parseModuleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UninstallErrorResponse{
				Error: "Module not found",
			})
			return
		}

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UninstallErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		module, count, err := svc.Uninstall(r.Context(), moduleID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UninstallErrorResponse{
					Error: "Module not found",
				})
			case errors.Is(err, services.ErrNotInstalled):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UninstallErrorResponse{
					Error: "Module is not installed",
				})
			default:
				logger.Log.Errorw("failed to uninstall module", "moduleID", moduleID, "userID", user.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UninstallErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UninstallResponse{
			Module:       newModulePayload(module),
			InstallCount: count,
		})
	}
}
