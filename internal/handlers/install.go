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

// Installer defines the interface that the install service must implement.
type Installer interface {
	Install(ctx context.Context, moduleID, userID uuid.UUID) (*models.ModuleDB, int, error)
}

// InstallResponse represents a successful installation response
// swagger:model InstallResponse
type InstallResponse struct {
	// Installed module
	Module ModulePayload `json:"module"`

	// Refreshed install count
	// default: 1
	InstallCount int `json:"install_count"`
}

// InstallErrorResponse represents an error response for installation
// swagger:model InstallErrorResponse
type InstallErrorResponse struct {
	// Error message
	// default: Module already installed
	Error string `json:"error"`
}

// NewInstallHandler returns an HTTP handler for installing a module for
// the authenticated user.
// @Summary Install module
// @Description Records an installation for the calling user. A second install of the same module is rejected.
// @Tags installs
// @Produce json
// @Param id path string true "Module ID"
// @Success 201 {object} handlers.InstallResponse "Module installed"
// @Failure 401 {object} handlers.InstallErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.InstallErrorResponse "Module not found"
// @Failure 409 {object} handlers.InstallErrorResponse "Module already installed"
// @Router /modules/{id}/install [post]
// @Security BearerAuth
func NewInstallHandler(svc Installer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID, err := parseModuleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(InstallErrorResponse{
				Error: "Module not found",
			})
			return
		}

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(InstallErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		module, count, err := svc.Install(r.Context(), moduleID, user.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(InstallErrorResponse{
					Error: "Module not found",
				})
			case errors.Is(err, services.ErrAlreadyInstalled):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(InstallErrorResponse{
					Error: "Module already installed",
				})
			default:
				logger.Log.Errorw("failed to install module", "moduleID", moduleID, "userID", user.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(InstallErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(InstallResponse{
			Module:       newModulePayload(module),
			InstallCount: count,
		})
	}
}
