package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/modmarket/modmarket/internal/logger"
	"github.com/modmarket/modmarket/internal/metrics"
	"github.com/modmarket/modmarket/internal/models"
)

// Search defaults applied to absent or non-positive parameters.
const (
	DefaultSinceDays = 30
	DefaultPageSize  = 20
)

// SearchRepository returns candidate modules with live install counts.
type SearchRepository interface {
	Search(ctx context.Context, query string, since time.Time) ([]models.ModuleWithCounts, error)
}

// SearchService filters, ranks, and paginates modules. Counts come from
// the installation ledger on every call; no rank is ever cached.
type SearchService struct {
	repo SearchRepository
	sink metrics.Sink
}

// NewSearchService creates a new SearchService.
func NewSearchService(repo SearchRepository, sink metrics.Sink) *SearchService {
	return &SearchService{
		repo: repo,
		sink: sink,
	}
}

// Search executes a ranked, paginated module query.
func (svc *SearchService) Search(ctx context.Context, params models.SearchParams) (*models.SearchResult, error) {
	// Counted unconditionally, before any filtering runs.
	if svc.sink != nil {
		svc.sink.Increment("module_search_total", nil)
	}

	sinceDays := params.SinceDays
	if sinceDays <= 0 {
		sinceDays = DefaultSinceDays
	}
	since := time.Now().UTC().AddDate(0, 0, -sinceDays)

	items, err := svc.repo.Search(ctx, strings.TrimSpace(params.Query), since)
	if err != nil {
		logger.Log.Errorw("module search failed", "query", params.Query, "err", err)
		return nil, err
	}

	sortModules(items, params.SortKey, params.Order)

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &models.SearchResult{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items[start:end],
	}, nil
}

// sortModules orders items by the named ranking key. Each key carries a
// fixed tie-break chain; order applies to every key in the chain except
// the trailing forced name tie-break, which is always ascending.
func sortModules(items []models.ModuleWithCounts, sortKey, order string) {
	asc := order == models.OrderAsc

	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]

		switch sortKey {
		case models.SortByPopular:
			if a.RecentInstallCount != b.RecentInstallCount {
				return intLess(a.RecentInstallCount, b.RecentInstallCount, asc)
			}
			if a.InstallCount != b.InstallCount {
				return intLess(a.InstallCount, b.InstallCount, asc)
			}
			return a.Name < b.Name
		case models.SortByInstalls:
			if a.InstallCount != b.InstallCount {
				return intLess(a.InstallCount, b.InstallCount, asc)
			}
			return a.Name < b.Name
		case models.SortByRuns:
			if a.RunCount != b.RunCount {
				return intLess(int(a.RunCount), int(b.RunCount), asc)
			}
			return a.Name < b.Name
		default:
			// Name is the primary key here, so order applies to it.
			if asc {
				return a.Name < b.Name
			}
			return a.Name > b.Name
		}
	})
}

func intLess(a, b int, asc bool) bool {
	if asc {
		return a < b
	}
	return a > b
}
