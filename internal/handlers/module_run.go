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

// RunIncrementer defines the interface that the registry service must implement.
type RunIncrementer interface {
	IncrementRun(ctx context.Context, moduleID uuid.UUID) (*models.ModuleDB, error)
}

// RunModuleResponse represents a successful run recording response
// swagger:model RunModuleResponse
type RunModuleResponse struct {
	// Module with the incremented run count
	Module ModulePayload `json:"module"`
}

// RunModuleErrorResponse represents an error response for run recording
// swagger:model RunModuleErrorResponse
type RunModuleErrorResponse struct {
	// Error message
	// default: Module not found
	Error string `json:"error"`
}

// NewRunModuleHandler returns an HTTP handler recording a module run.
// Anyone may record a run, no session required.
// @Summary Record a module run
// @Description Atomically increments the module's run counter and returns the updated module
// @Tags modules
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} handlers.RunModuleResponse "Run recorded"
// @Failure 404 {object} handlers.RunModuleErrorResponse "Module not found"
// @Failure 500 {object} handlers.RunModuleErrorResponse "Internal server error"
// @Router /modules/{id}/run [post]
func NewRunModuleHandler(svc RunIncrementer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID, err := parseModuleID(r)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(RunModuleErrorResponse{
				Error: "Module not found",
			})
			return
		}

		module, err := svc.IncrementRun(r.Context(), moduleID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrModuleNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(RunModuleErrorResponse{
					Error: "Module not found",
				})
			default:
				logger.Log.Errorw("failed to record run", "moduleID", moduleID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RunModuleErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RunModuleResponse{
			Module: newModulePayload(module),
		})
	}
}
