package category

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"editorial-cms/internal/domain"
	"editorial-cms/internal/store"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFile(filepath.Join(t.TempDir(), "db.json"))
}

func TestCreate_And_Get(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	created, err := svc.Create(ctx, CreateInput{Name: "Économie", Color: "#059669"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "economie" {
		t.Fatalf("expected accent-stripped slug, got %q", created.Slug)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Économie" || got.Color != "#059669" {
		t.Fatalf("unexpected category %+v", got)
	}
}

func TestCreate_NameConflict(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	if _, err := svc.Create(ctx, CreateInput{Name: "Tech"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Same slug via different casing is still a conflict.
	if _, err := svc.Create(ctx, CreateInput{Name: "TECH"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreate_NameTooShort(t *testing.T) {
	svc := New(newTestStore(t))
	if _, err := svc.Create(context.Background(), CreateInput{Name: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdate_RenameReslugsWithConflictCheck(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	a, err := svc.Create(ctx, CreateInput{Name: "Alpha"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "Beta"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Beta"
	if _, err := svc.Update(ctx, a.ID, UpdateInput{Name: &name}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected rename conflict, got %v", err)
	}

	name = "Gamma"
	updated, err := svc.Update(ctx, a.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Gamma" || updated.Slug != "gamma" {
		t.Fatalf("unexpected updated category %+v", updated)
	}
}

func TestDelete_CascadesReferenceRemoval(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := New(st)

	doomed, err := svc.Create(ctx, CreateInput{Name: "Doomed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	kept, err := svc.Create(ctx, CreateInput{Name: "Kept"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC()
	db, _ := st.Load(ctx)
	db.Articles = append(db.Articles, domain.Article{
		ID: "art_1", Title: "Tagged twice", Slug: "tagged-twice",
		Excerpt: "short excerpt", Content: "content long enough", Status: domain.StatusDraft,
		CategoryIDs: []string{doomed.ID, kept.ID}, AuthorName: "Jo",
		CreatedAt: now, UpdatedAt: now,
	})
	if err := st.Save(ctx, db); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	db, _ = st.Load(ctx)
	if len(db.Categories) != 1 || db.Categories[0].ID != kept.ID {
		t.Fatalf("unexpected categories after delete: %+v", db.Categories)
	}
	a := db.ArticleByID("art_1")
	if a == nil {
		t.Fatalf("article must survive category deletion")
	}
	if len(a.CategoryIDs) != 1 || a.CategoryIDs[0] != kept.ID {
		t.Fatalf("expected only the kept reference, got %v", a.CategoryIDs)
	}
	if a.Title != "Tagged twice" || a.Slug != "tagged-twice" {
		t.Fatalf("article mutated beyond reference removal: %+v", a)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := New(newTestStore(t))
	if err := svc.Delete(context.Background(), "cat_missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
