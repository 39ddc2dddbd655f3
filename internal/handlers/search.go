package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/models"
)

// ModuleSearcher defines the interface that the search service must implement.
type ModuleSearcher interface {
	Search(ctx context.Context, params models.SearchParams) (*models.SearchResult, error)
}

// SearchItem represents one ranked module in a search result page
// swagger:model SearchItem
type SearchItem struct {
	// Module
	Module ModulePayload `json:"module"`

	// Total install count
	// default: 0
	InstallCount int `json:"install_count"`

	// Installs within the recency window
	// default: 0
	RecentInstallCount int `json:"recent_install_count"`
}

// SearchResponse represents a page of ranked search results
// swagger:model SearchResponse
type SearchResponse struct {
	// Pre-pagination match count
	// default: 0
	Total int `json:"total"`

	// 1-indexed page
	// default: 1
	Page int `json:"page"`

	// Page size
	// default: 20
	PageSize int `json:"page_size"`

	// Ranked modules on this page
	Items []SearchItem `json:"items"`
}

// SearchErrorResponse represents an error response for search
// swagger:model SearchErrorResponse
type SearchErrorResponse struct {
	// Error message
	// default: invalid query parameter
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler for ranked module search.
// @Summary Search modules
// @Description Filters modules by a case-insensitive substring over name and description, ranks them, and returns one page.
// @Tags modules
// @Produce json
// @Param q query string false "Substring filter over name and description"
// @Param sort query string false "Sort key: popular, installs, runs, or name" default(popular)
// @Param order query string false "Sort order: asc or desc" default(desc)
// @Param page query int false "1-indexed page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param since_days query int false "Recency window for the popular ranking, in days" default(30)
// @Success 200 {object} handlers.SearchResponse "One page of ranked modules"
// @Failure 400 {object} handlers.SearchErrorResponse "Non-integer page, page_size, or since_days"
// @Failure 500 {object} handlers.SearchErrorResponse "Internal server error"
// @Router /modules [get]
func NewSearchHandler(svc ModuleSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := models.SearchParams{
			Query:   r.URL.Query().Get("q"),
			SortKey: r.URL.Query().Get("sort"),
			Order:   r.URL.Query().Get("order"),
		}

		var err error
		if params.Page, err = queryInt(r, "page"); err == nil {
			if params.PageSize, err = queryInt(r, "page_size"); err == nil {
				params.SinceDays, err = queryInt(r, "since_days")
			}
		}
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SearchErrorResponse{
				Error: "invalid query parameter",
			})
			return
		}

		result, err := svc.Search(r.Context(), params)
		if err != nil {
			logger.Log.Errorw("search failed", "query", params.Query, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SearchErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		items := make([]SearchItem, 0, len(result.Items))
		for i := range result.Items {
			items = append(items, SearchItem{
				Module:             newModulePayload(&result.Items[i].ModuleDB),
				InstallCount:       result.Items[i].InstallCount,
				RecentInstallCount: result.Items[i].RecentInstallCount,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SearchResponse{
			Total:    result.Total,
			Page:     result.Page,
			PageSize: result.PageSize,
			Items:    items,
		})
	}
}

// queryInt parses an optional integer query parameter, returning 0 when it
// is absent.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
