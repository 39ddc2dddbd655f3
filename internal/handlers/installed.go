package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/middlewares"
	"github.com/modmarket/modmarket/internal/models"
)

// InstalledLister defines the interface that the install service must implement.
type InstalledLister interface {
	ListInstalled(ctx context.Context, userID string) ([]models.InstalledModule, error)
}

// InstalledModulePayload represents one entry of a user's install list
// swagger:model InstalledModulePayload
type InstalledModulePayload struct {
	// Module
	Module ModulePayload `json:"module"`

	// Global install count
	// default: 1
	InstallCount int `json:"install_count"`

	// Owner's username, empty for ownerless modules
	AuthorUsername string `json:"author_username"`

	// When this user installed the module
	InstalledAt time.Time `json:"installed_at"`
}

// InstalledResponse represents the calling user's installed modules
// swagger:model InstalledResponse
type InstalledResponse struct {
	// Installed modules, most recently installed first
	Modules []InstalledModulePayload `json:"modules"`
}

// InstalledErrorResponse represents an error response for the install list
// swagger:model InstalledErrorResponse
type InstalledErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewInstalledHandler returns an HTTP handler listing the calling user's
// installed modules.
// @Summary List installed modules
// @Description Returns every module the calling user has installed, newest install first, with live install counts and resolved author names.
// @Tags installs
// @Produce json
// @Success 200 {object} handlers.InstalledResponse "Installed modules"
// @Failure 401 {object} handlers.InstalledErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.InstalledErrorResponse "Internal server error"
// @Router /user/modules [get]
// @Security BearerAuth
func NewInstalledHandler(svc InstalledLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(InstalledErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		installed, err := svc.ListInstalled(r.Context(), user.UserID.String())
		if err != nil {
			logger.Log.Errorw("failed to list installed modules", "userID", user.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(InstalledErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		payload := make([]InstalledModulePayload, 0, len(installed))
		for i := range installed {
			payload = append(payload, InstalledModulePayload{
				Module:         newModulePayload(&installed[i].ModuleDB),
				InstallCount:   installed[i].InstallCount,
				AuthorUsername: installed[i].AuthorUsername,
				InstalledAt:    installed[i].InstalledAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(InstalledResponse{
			Modules: payload,
		})
	}
}
