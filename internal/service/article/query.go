package article

import (
	"context"
	"sort"
	"strings"

	"editorial-cms/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Fixed-width timestamp form so lexicographic order matches chronological
// order for sort keys.
const sortTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Filter selects, orders and pages the article collection. Zero values mean
// "no constraint" except Featured, which is a tri-state pointer.
type Filter struct {
	Page        int
	Limit       int
	Search      string
	Status      domain.ArticleStatus
	CategoryIDs []string
	NetworkID   string
	Featured    *bool
	SortBy      string // createdAt | updatedAt | publishedAt | title
	SortDir     string // asc | desc
}

// Page is one page of results plus the size of the full filtered set.
type Page struct {
	Items      []domain.Article `json:"items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// List runs the filter pipeline as a full scan: search, status, category
// subset, network, featured, then sort and paginate. An out-of-range page
// yields an empty page, not an error.
func (s *Service) List(ctx context.Context, f Filter) (*Page, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Article, 0, len(db.Articles))
	for _, a := range db.Articles {
		if matches(a, f) {
			items = append(items, a)
		}
	}

	sortArticles(items, f.SortBy, f.SortDir)

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &Page{
		Items:      items[offset:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func matches(a domain.Article, f Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Excerpt), q) &&
			!strings.Contains(strings.ToLower(a.AuthorName), q) {
			return false
		}
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	// The article must reference every requested category.
	for _, cid := range f.CategoryIDs {
		if !a.HasCategory(cid) {
			return false
		}
	}
	if f.NetworkID != "" {
		if a.NetworkID == nil || *a.NetworkID != f.NetworkID {
			return false
		}
	}
	if f.Featured != nil && a.Featured != *f.Featured {
		return false
	}
	return true
}

// sortArticles orders by the string form of the chosen field, stable, with an
// unset publishedAt sorting as the empty string. Default is createdAt desc.
func sortArticles(items []domain.Article, sortBy, sortDir string) {
	if sortBy == "" {
		sortBy = "createdAt"
	}
	if sortDir == "" {
		sortDir = "desc"
	}
	desc := sortDir == "desc"

	sort.SliceStable(items, func(i, j int) bool {
		a, b := sortValue(items[i], sortBy), sortValue(items[j], sortBy)
		if desc {
			return a > b
		}
		return a < b
	})
}

func sortValue(a domain.Article, field string) string {
	switch field {
	case "title":
		return a.Title
	case "updatedAt":
		return a.UpdatedAt.Format(sortTimeLayout)
	case "publishedAt":
		if a.PublishedAt == nil {
			return ""
		}
		return a.PublishedAt.Format(sortTimeLayout)
	default:
		return a.CreatedAt.Format(sortTimeLayout)
	}
}
