package seed

import (
	"context"
	"fmt"
	"time"

	"editorial-cms/internal/domain"
	"editorial-cms/internal/ident"
	"editorial-cms/internal/slug"
	"editorial-cms/internal/store"
)

// Apply writes basic sample data for manual testing. It is idempotent:
// an already-populated store is left alone.
func Apply(ctx context.Context, st store.Store) error {
	db, err := st.Load(ctx)
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if len(db.Categories) > 0 || len(db.Articles) > 0 {
		return nil
	}

	now := time.Now().UTC()

	categories := []domain.Category{
		{ID: ident.New("cat"), Name: "Technology", Slug: "technology", Color: "#2563EB", CreatedAt: now, UpdatedAt: now},
		{ID: ident.New("cat"), Name: "Culture", Slug: "culture", Color: "#E63946", CreatedAt: now, UpdatedAt: now},
		{ID: ident.New("cat"), Name: "Economy", Slug: "economy", Color: "#059669", CreatedAt: now, UpdatedAt: now},
	}
	networks := []domain.Network{
		{ID: ident.New("net"), Name: "Daily Observer", Slug: "daily-observer", Description: "General news partner network", CreatedAt: now, UpdatedAt: now},
		{ID: ident.New("net"), Name: "Tech Courier", Slug: "tech-courier", Description: "Technology-focused partner network", CreatedAt: now, UpdatedAt: now},
	}

	techNet := networks[1].ID
	publishedAt := now
	articles := []domain.Article{
		{
			ID:          ident.New("art"),
			Title:       "Welcome to the Editorial CMS",
			Slug:        slug.Make("Welcome to the Editorial CMS"),
			Excerpt:     "A quick tour of the editorial backend and its content model.",
			Content:     "This sample article demonstrates the canonical article shape: title, excerpt, content, categories and an optional network.",
			Status:      domain.StatusPublished,
			CategoryIDs: []string{categories[0].ID},
			NetworkID:   &techNet,
			AuthorName:  "Editorial Team",
			PublishedAt: &publishedAt,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          ident.New("art"),
			Title:       "Draft: upcoming culture coverage",
			Slug:        slug.Make("Draft: upcoming culture coverage"),
			Excerpt:     "Planning notes for the culture desk, not yet published.",
			Content:     "Drafts stay invisible to published-only queries until their status changes.",
			Status:      domain.StatusDraft,
			CategoryIDs: []string{categories[1].ID},
			AuthorName:  "Editorial Team",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	db.Categories = append(db.Categories, categories...)
	db.Networks = append(db.Networks, networks...)
	db.Articles = append(db.Articles, articles...)

	if err := st.Save(ctx, db); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}
