// Package category implements category CRUD. Deleting a category cascades by
// stripping its id from every article's reference set; articles themselves
// are never deleted.
package category

import (
	"context"
	"fmt"
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

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// UpdateInput is a partial merge; nil pointers leave fields untouched.
type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return db.Categories, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	c := db.CategoryByID(id)
	if c == nil {
		return nil, fmt.Errorf("category %q: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// Create derives the slug from the name; a slug collision is a conflict, not
// a plain validation failure, so callers can map it to a distinct response.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}

	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	catSlug := slug.Make(in.Name)
	if slugInUse(db.Categories, catSlug, "") {
		return nil, fmt.Errorf("%w: a category named %q already exists", domain.ErrConflict, in.Name)
	}

	now := time.Now().UTC()
	c := domain.Category{
		ID:          ident.New("cat"),
		Name:        in.Name,
		Slug:        catSlug,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	db.Categories = append(db.Categories, c)
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Category, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	existing := db.CategoryByID(id)
	if existing == nil {
		return nil, fmt.Errorf("category %q: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil && *in.Name != existing.Name {
		if err := validateName(*in.Name); err != nil {
			return nil, err
		}
		newSlug := slug.Make(*in.Name)
		if slugInUse(db.Categories, newSlug, id) {
			return nil, fmt.Errorf("%w: a category named %q already exists", domain.ErrConflict, *in.Name)
		}
		existing.Name = *in.Name
		existing.Slug = newSlug
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Color != nil {
		existing.Color = *in.Color
	}
	existing.UpdatedAt = time.Now().UTC()

	result := *existing
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes the category and strips its id from every article.
func (s *Service) Delete(ctx context.Context, id string) error {
	db, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range db.Categories {
		if db.Categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("category %q: %w", id, domain.ErrNotFound)
	}

	for i := range db.Articles {
		refs := db.Articles[i].CategoryIDs
		kept := refs[:0]
		for _, cid := range refs {
			if cid != id {
				kept = append(kept, cid)
			}
		}
		db.Articles[i].CategoryIDs = kept
	}

	db.Categories = append(db.Categories[:idx], db.Categories[idx+1:]...)
	return s.store.Save(ctx, db)
}

func validateName(name string) error {
	n := len([]rune(name))
	if n < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", domain.ErrValidation)
	}
	if n > 100 {
		return fmt.Errorf("%w: name must be at most 100 characters", domain.ErrValidation)
	}
	return nil
}

func slugInUse(categories []domain.Category, candidate, excludeID string) bool {
	for _, c := range categories {
		if c.Slug == candidate && c.ID != excludeID {
			return true
		}
	}
	return false
}
