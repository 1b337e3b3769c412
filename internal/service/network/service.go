// Package network implements network CRUD. A network cannot be deleted while
// any article still references it.
package network

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
	LogoURL     string `json:"logoUrl"`
}

type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoUrl"`
}

func (s *Service) List(ctx context.Context) ([]domain.Network, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return db.Networks, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Network, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	n := db.NetworkByID(id)
	if n == nil {
		return nil, fmt.Errorf("network %q: %w", id, domain.ErrNotFound)
	}
	return n, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Network, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}

	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	netSlug := slug.Make(in.Name)
	if slugInUse(db.Networks, netSlug, "") {
		return nil, fmt.Errorf("%w: a network named %q already exists", domain.ErrConflict, in.Name)
	}

	now := time.Now().UTC()
	n := domain.Network{
		ID:          ident.New("net"),
		Name:        in.Name,
		Slug:        netSlug,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	db.Networks = append(db.Networks, n)
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Network, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	existing := db.NetworkByID(id)
	if existing == nil {
		return nil, fmt.Errorf("network %q: %w", id, domain.ErrNotFound)
	}

	if in.Name != nil && *in.Name != existing.Name {
		if err := validateName(*in.Name); err != nil {
			return nil, err
		}
		newSlug := slug.Make(*in.Name)
		if slugInUse(db.Networks, newSlug, id) {
			return nil, fmt.Errorf("%w: a network named %q already exists", domain.ErrConflict, *in.Name)
		}
		existing.Name = *in.Name
		existing.Slug = newSlug
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.LogoURL != nil {
		existing.LogoURL = *in.LogoURL
	}
	existing.UpdatedAt = time.Now().UTC()

	result := *existing
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete refuses to remove a network that any article still references. The
// guard blocks the delete entirely; the store is left untouched.
func (s *Service) Delete(ctx context.Context, id string) error {
	db, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range db.Networks {
		if db.Networks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("network %q: %w", id, domain.ErrNotFound)
	}

	inUse := 0
	for _, a := range db.Articles {
		if a.NetworkID != nil && *a.NetworkID == id {
			inUse++
		}
	}
	if inUse > 0 {
		return fmt.Errorf("%w: network %q is referenced by %d article(s)", domain.ErrConflict, id, inUse)
	}

	db.Networks = append(db.Networks[:idx], db.Networks[idx+1:]...)
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

// Slug comparison is case-sensitive byte equality; slug.Make already
// lowercases, so normalization happens before the check, never during it.
func slugInUse(networks []domain.Network, candidate, excludeID string) bool {
	for _, n := range networks {
		if n.Slug == candidate && n.ID != excludeID {
			return true
		}
	}
	return false
}
