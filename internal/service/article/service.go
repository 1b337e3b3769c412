// Package article implements the article query and mutation engines. Both
// operate on a whole-store snapshot: one Load, in-memory computation, at most
// one Save per call.
package article

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"editorial-cms/internal/domain"
	"editorial-cms/internal/ident"
	"editorial-cms/internal/slug"
	"editorial-cms/internal/store"
)

type Service struct {
	store store.Store
}

func New(st store.Store) *Service {
	return &Service{store: st}
}

// CreateInput captures fields accepted when creating an article. Zero-value
// Status defaults to draft. A nil PublishedAt means "not supplied": it is
// auto-filled with the current time only when the article is created already
// published.
type CreateInput struct {
	Title         string               `json:"title"`
	Excerpt       string               `json:"excerpt"`
	Content       string               `json:"content"`
	Status        domain.ArticleStatus `json:"status"`
	Featured      bool                 `json:"featured"`
	CategoryIDs   []string             `json:"categoryIds"`
	NetworkID     *string              `json:"networkId"`
	AuthorName    string               `json:"authorName"`
	CoverImageURL string               `json:"coverImageUrl"`
	PublishedAt   *time.Time           `json:"publishedAt"`
}

// UpdateInput is a partial-field merge: nil pointers (and a nil CategoryIDs
// slice) leave the existing value untouched. Setting NetworkID to an empty
// string clears the network reference.
type UpdateInput struct {
	Title         *string               `json:"title"`
	Excerpt       *string               `json:"excerpt"`
	Content       *string               `json:"content"`
	Status        *domain.ArticleStatus `json:"status"`
	Featured      *bool                 `json:"featured"`
	CategoryIDs   []string              `json:"categoryIds"`
	NetworkID     *string               `json:"networkId"`
	AuthorName    *string               `json:"authorName"`
	CoverImageURL *string               `json:"coverImageUrl"`
	PublishedAt   *time.Time            `json:"publishedAt"`
}

// GetByID returns the article with the given id.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	a := db.ArticleByID(id)
	if a == nil {
		return nil, fmt.Errorf("article %q: %w", id, domain.ErrNotFound)
	}
	return a, nil
}

// Create validates references, derives a unique slug from the title and
// persists the new article.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Article, error) {
	if in.Status == "" {
		in.Status = domain.StatusDraft
	}
	if err := validateFields(in.Title, in.Excerpt, in.Content, in.AuthorName, in.Status, in.CoverImageURL); err != nil {
		return nil, err
	}

	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateCategoryIDs(db, in.CategoryIDs); err != nil {
		return nil, err
	}
	if err := validateNetworkID(db, in.NetworkID); err != nil {
		return nil, err
	}

	uniqueSlug := slug.EnsureUnique(slug.Make(in.Title), slugTaken(db.Articles, ""))
	now := time.Now().UTC()

	publishedAt := in.PublishedAt
	if publishedAt == nil && in.Status == domain.StatusPublished {
		publishedAt = &now
	}

	categoryIDs := in.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}

	a := domain.Article{
		ID:            ident.New("art"),
		Title:         in.Title,
		Slug:          uniqueSlug,
		Excerpt:       in.Excerpt,
		Content:       in.Content,
		Status:        in.Status,
		Featured:      in.Featured,
		CategoryIDs:   categoryIDs,
		NetworkID:     in.NetworkID,
		AuthorName:    in.AuthorName,
		CoverImageURL: in.CoverImageURL,
		PublishedAt:   publishedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	db.Articles = append(db.Articles, a)
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update merges the supplied fields over the existing article. The slug is
// recomputed only when the title actually changes; publishedAt is set once
// when the status transitions to published with no timestamp yet.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Article, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	existing := db.ArticleByID(id)
	if existing == nil {
		return nil, fmt.Errorf("article %q: %w", id, domain.ErrNotFound)
	}

	if in.CategoryIDs != nil {
		if err := validateCategoryIDs(db, in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	if in.NetworkID != nil && *in.NetworkID != "" {
		if err := validateNetworkID(db, in.NetworkID); err != nil {
			return nil, err
		}
	}

	updated := *existing
	now := time.Now().UTC()

	if in.Title != nil {
		if err := checkLen("title", *in.Title, 3, 300); err != nil {
			return nil, err
		}
		if *in.Title != existing.Title {
			updated.Slug = slug.EnsureUnique(slug.Make(*in.Title), slugTaken(db.Articles, id))
		}
		updated.Title = *in.Title
	}
	if in.Excerpt != nil {
		if err := checkLen("excerpt", *in.Excerpt, 10, 1000); err != nil {
			return nil, err
		}
		updated.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		if err := checkLen("content", *in.Content, 10, 0); err != nil {
			return nil, err
		}
		updated.Content = *in.Content
	}
	if in.Status != nil {
		if !domain.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
		}
		updated.Status = *in.Status
	}
	if in.Featured != nil {
		updated.Featured = *in.Featured
	}
	if in.CategoryIDs != nil {
		updated.CategoryIDs = in.CategoryIDs
	}
	if in.NetworkID != nil {
		if *in.NetworkID == "" {
			updated.NetworkID = nil
		} else {
			updated.NetworkID = in.NetworkID
		}
	}
	if in.AuthorName != nil {
		if err := checkLen("authorName", *in.AuthorName, 2, 200); err != nil {
			return nil, err
		}
		updated.AuthorName = *in.AuthorName
	}
	if in.CoverImageURL != nil {
		if err := checkURL("coverImageUrl", *in.CoverImageURL); err != nil {
			return nil, err
		}
		updated.CoverImageURL = *in.CoverImageURL
	}
	if in.PublishedAt != nil {
		updated.PublishedAt = in.PublishedAt
	}

	if updated.Status == domain.StatusPublished && updated.PublishedAt == nil {
		updated.PublishedAt = &now
	}
	updated.UpdatedAt = now

	*db.ArticleByID(id) = updated
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the article from the store.
func (s *Service) Delete(ctx context.Context, id string) error {
	db, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range db.Articles {
		if db.Articles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("article %q: %w", id, domain.ErrNotFound)
	}
	db.Articles = append(db.Articles[:idx], db.Articles[idx+1:]...)
	return s.store.Save(ctx, db)
}

// PatchStatus sets only the status, touching publishedAt once on the first
// transition to published and leaving every other field alone.
func (s *Service) PatchStatus(ctx context.Context, id string, status domain.ArticleStatus) (*domain.Article, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	a := db.ArticleByID(id)
	if a == nil {
		return nil, fmt.Errorf("article %q: %w", id, domain.ErrNotFound)
	}

	now := time.Now().UTC()
	a.Status = status
	if status == domain.StatusPublished && a.PublishedAt == nil {
		a.PublishedAt = &now
	}
	a.UpdatedAt = now

	result := *a
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &result, nil
}

func validateFields(title, excerpt, content, author string, status domain.ArticleStatus, coverURL string) error {
	if err := checkLen("title", title, 3, 300); err != nil {
		return err
	}
	if err := checkLen("excerpt", excerpt, 10, 1000); err != nil {
		return err
	}
	if err := checkLen("content", content, 10, 0); err != nil {
		return err
	}
	if err := checkLen("authorName", author, 2, 200); err != nil {
		return err
	}
	if !domain.ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return checkURL("coverImageUrl", coverURL)
}

func checkLen(field, value string, min, max int) error {
	n := len([]rune(value))
	if n < min {
		return fmt.Errorf("%w: %s must be at least %d characters", domain.ErrValidation, field, min)
	}
	if max > 0 && n > max {
		return fmt.Errorf("%w: %s must be at most %d characters", domain.ErrValidation, field, max)
	}
	return nil
}

func checkURL(field, value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s must be a valid URL", domain.ErrValidation, field)
	}
	return nil
}

func validateCategoryIDs(db *domain.Database, ids []string) error {
	var invalid []string
	for _, id := range ids {
		if db.CategoryByID(id) == nil {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%w: invalid category id(s): %s", domain.ErrValidation, strings.Join(invalid, ", "))
	}
	return nil
}

func validateNetworkID(db *domain.Database, id *string) error {
	if id == nil || *id == "" {
		return nil
	}
	if db.NetworkByID(*id) == nil {
		return fmt.Errorf("%w: invalid network id: %q", domain.ErrValidation, *id)
	}
	return nil
}

// slugTaken reports slug collisions among articles, ignoring excludeID so an
// article keeps its own slug on update.
func slugTaken(articles []domain.Article, excludeID string) func(string) bool {
	return func(candidate string) bool {
		for _, a := range articles {
			if a.Slug == candidate && a.ID != excludeID {
				return true
			}
		}
		return false
	}
}
