package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
	"github.com/modmarket/modmarket/internal/services"
)

// ModuleGetter defines the interface that the registry service must implement.
type ModuleGetter interface {
	Get(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, int, error)
}

// GetModuleResponse represents a single module with its live install count
// swagger:model GetModuleResponse
type GetModuleResponse struct {
	// Module
	Module ModulePayload `json:"module"`

	// Live install count
	// default: 0
	InstallCount int `json:"install_count"`
}

// GetModuleErrorResponse represents an error response for module lookup
// swagger:model GetModuleErrorResponse
type GetModuleErrorResponse struct {
	// Error message
	// default: Module not found
	Error string `json:"error"`
}

// NewGetModuleHandler returns an HTTP handler for fetching a single module.
// @Summary Get module
// @Description Returns the module together with its install count, recomputed on each call
// @Tags modules
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} handlers.GetModuleResponse "Module found"
// @Failure 404 {object} handlers.GetModuleErrorResponse "Module not found"
// @Failure 500 {object} handlers.GetModuleErrorResponse "Internal server error"
// @Router /modules/{id} [get]
func NewGetModuleHandler(svc ModuleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID, err := parseModuleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetModuleErrorResponse{
				Error: "Module not found",
			})
			return
		}

		module, count, err := svc.Get(r.Context(), moduleID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetModuleErrorResponse{
					Error: "Module not found",
				})
			default:
				logger.Log.Errorw("failed to get module", "moduleID", moduleID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetModuleErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetModuleResponse{
			Module:       newModulePayload(module),
			InstallCount: count,
		})
	}
}
