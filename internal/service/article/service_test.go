package article

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

// seedRefs persists one category and one network and returns their ids.
func seedRefs(t *testing.T, st *store.FileStore) (string, string) {
	t.Helper()
	ctx := context.Background()
	db, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	now := time.Now().UTC()
	db.Categories = append(db.Categories, domain.Category{
		ID: "cat_tech", Name: "Tech", Slug: "tech", CreatedAt: now, UpdatedAt: now,
	})
	db.Networks = append(db.Networks, domain.Network{
		ID: "net_main", Name: "Main", Slug: "main", CreatedAt: now, UpdatedAt: now,
	})
	if err := st.Save(ctx, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	return "cat_tech", "net_main"
}

func validInput() CreateInput {
	return CreateInput{
		Title:      "Hello World",
		Excerpt:    "A short excerpt.",
		Content:    "Some long enough content.",
		AuthorName: "Jo Writer",
	}
}

func TestCreate_SlugSequence(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	first, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Slug != "hello-world" {
		t.Fatalf("expected slug hello-world, got %q", first.Slug)
	}

	second, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.Slug != "hello-world-1" {
		t.Fatalf("expected slug hello-world-1, got %q", second.Slug)
	}

	third, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create third: %v", err)
	}
	if third.Slug != "hello-world-2" {
		t.Fatalf("expected slug hello-world-2, got %q", third.Slug)
	}
}

func TestCreate_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	catID, _ := seedRefs(t, st)
	svc := New(st)

	in := validInput()
	in.CategoryIDs = []string{catID, "cat_missing"}
	if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown category, got %v", err)
	}

	in = validInput()
	missing := "net_missing"
	in.NetworkID = &missing
	if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown network, got %v", err)
	}

	db, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(db.Articles) != 0 {
		t.Fatalf("expected no articles persisted, got %d", len(db.Articles))
	}
}

func TestCreate_FieldValidation(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	in := validInput()
	in.Title = "ab"
	if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for short title, got %v", err)
	}

	in = validInput()
	in.CoverImageURL = "not a url"
	if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad cover url, got %v", err)
	}

	in = validInput()
	in.Status = "review"
	if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestCreate_PublishedAtDefaults(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	draft, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if draft.PublishedAt != nil {
		t.Fatalf("expected nil publishedAt on draft, got %v", draft.PublishedAt)
	}

	in := validInput()
	in.Status = domain.StatusPublished
	published, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create published: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatalf("expected publishedAt set when created published")
	}

	explicit := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	in = validInput()
	in.PublishedAt = &explicit
	a, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create explicit: %v", err)
	}
	if a.PublishedAt == nil || !a.PublishedAt.Equal(explicit) {
		t.Fatalf("expected explicit publishedAt preserved, got %v", a.PublishedAt)
	}
}

func TestGetByID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	catID, netID := seedRefs(t, st)
	svc := New(st)

	in := validInput()
	in.CategoryIDs = []string{catID}
	in.NetworkID = &netID
	in.Featured = true
	in.CoverImageURL = "https://example.com/cover.jpg"

	created, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != created.Title || got.Slug != created.Slug || got.Excerpt != created.Excerpt ||
		got.Content != created.Content || got.Status != created.Status || got.Featured != created.Featured ||
		got.AuthorName != created.AuthorName || got.CoverImageURL != created.CoverImageURL {
		t.Fatalf("round-trip mismatch:\ncreated %+v\ngot     %+v", created, got)
	}
	if len(got.CategoryIDs) != 1 || got.CategoryIDs[0] != catID {
		t.Fatalf("unexpected categories %v", got.CategoryIDs)
	}
	if got.NetworkID == nil || *got.NetworkID != netID {
		t.Fatalf("unexpected network %v", got.NetworkID)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) || !got.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("timestamps changed on round-trip")
	}

	if _, err := svc.GetByID(ctx, "art_missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdate_EmptyInputOnlyBumpsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, UpdateInput{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != created.Title || updated.Slug != created.Slug ||
		updated.Excerpt != created.Excerpt || updated.Content != created.Content ||
		updated.Status != created.Status || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("empty update changed fields:\nbefore %+v\nafter  %+v", created, updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updatedAt went backwards")
	}
}

func TestUpdate_TitleChangeRecomputesSlug(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	a, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other := validInput()
	other.Title = "Other Story"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}

	title := "Other Story"
	updated, err := svc.Update(ctx, a.ID, UpdateInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Slug != "other-story-1" {
		t.Fatalf("expected disambiguated slug other-story-1, got %q", updated.Slug)
	}

	// Re-saving the same title must not disturb the slug: the record's own
	// slug is excluded from the collision check.
	same := "Other Story"
	again, err := svc.Update(ctx, a.ID, UpdateInput{Title: &same})
	if err != nil {
		t.Fatalf("update again: %v", err)
	}
	if again.Slug != "other-story-1" {
		t.Fatalf("expected slug kept, got %q", again.Slug)
	}
}

func TestUpdate_PublishSetsPublishedAtOnce(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	a, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published := domain.StatusPublished
	first, err := svc.Update(ctx, a.ID, UpdateInput{Status: &published})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if first.PublishedAt == nil {
		t.Fatalf("expected publishedAt set on publish")
	}

	second, err := svc.Update(ctx, a.ID, UpdateInput{Status: &published})
	if err != nil {
		t.Fatalf("update again: %v", err)
	}
	if !second.PublishedAt.Equal(*first.PublishedAt) {
		t.Fatalf("publishedAt changed on re-publish: %v vs %v", second.PublishedAt, first.PublishedAt)
	}
}

func TestUpdate_ClearNetwork(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	_, netID := seedRefs(t, st)
	svc := New(st)

	in := validInput()
	in.NetworkID = &netID
	a, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := ""
	updated, err := svc.Update(ctx, a.ID, UpdateInput{NetworkID: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.NetworkID != nil {
		t.Fatalf("expected network cleared, got %v", *updated.NetworkID)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := New(newTestStore(t))
	if _, err := svc.Update(context.Background(), "art_missing", UpdateInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := New(st)

	a, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected article gone, got %v", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestPatchStatus(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	a, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	patched, err := svc.PatchStatus(ctx, a.ID, domain.StatusPublished)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if patched.PublishedAt == nil {
		t.Fatalf("expected publishedAt set on first publish")
	}
	if patched.Title != a.Title || patched.Excerpt != a.Excerpt {
		t.Fatalf("patch touched unrelated fields")
	}

	again, err := svc.PatchStatus(ctx, a.ID, domain.StatusPublished)
	if err != nil {
		t.Fatalf("patch again: %v", err)
	}
	if !again.PublishedAt.Equal(*patched.PublishedAt) {
		t.Fatalf("publishedAt changed on repeated patch")
	}

	if _, err := svc.PatchStatus(ctx, a.ID, "review"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}
	if _, err := svc.PatchStatus(ctx, "art_missing", domain.StatusDraft); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
