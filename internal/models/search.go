package models

// Sort keys accepted by the search engine. An unknown key falls back to
// SortByName.
const (
	SortByPopular  = "popular"
	SortByInstalls = "installs"
	SortByRuns     = "runs"
	SortByName     = "name"
)

// Sort orders. Anything other than OrderAsc is treated as descending.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SearchParams carries the filtering, ranking, and pagination inputs of a
// search query.
type SearchParams struct {
	Query     string `json:"query"`      // Case-insensitive substring over name or description
	SortKey   string `json:"sort_key"`   // One of the SortBy* keys
	Order     string `json:"order"`      // "asc" or anything-else -> desc
	Page      int    `json:"page"`       // 1-indexed
	PageSize  int    `json:"page_size"`  // Fixed page size, defaulted when <= 0
	SinceDays int    `json:"since_days"` // Recency window, defaulted to 30 when <= 0
}

// SearchResult is a page of ranked modules. Total is the pre-pagination
// match count.
type SearchResult struct {
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Items    []ModuleWithCounts `json:"items"`
}
