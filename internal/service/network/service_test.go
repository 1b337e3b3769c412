package network

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"editorial-cms/internal/domain"
	"editorial-cms/internal/store"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFile(filepath.Join(t.TempDir(), "db.json"))
}

func TestCreate_Conflict(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	if _, err := svc.Create(ctx, CreateInput{Name: "Daily Observer"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "daily observer"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict on same slug, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := New(newTestStore(t))

	n, err := svc.Create(ctx, CreateInput{Name: "Daily Observer"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	desc := "general news"
	updated, err := svc.Update(ctx, n.ID, UpdateInput{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != desc || updated.Slug != "daily-observer" {
		t.Fatalf("unexpected network %+v", updated)
	}
}

func TestDelete_BlockedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := New(st)

	n, err := svc.Create(ctx, CreateInput{Name: "Referenced Net"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC()
	db, _ := st.Load(ctx)
	db.Articles = append(db.Articles, domain.Article{
		ID: "art_1", Title: "Syndicated piece", Slug: "syndicated-piece",
		Excerpt: "short excerpt", Content: "content long enough", Status: domain.StatusDraft,
		CategoryIDs: []string{}, NetworkID: &n.ID, AuthorName: "Jo",
		CreatedAt: now, UpdatedAt: now,
	})
	if err := st.Save(ctx, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	before, _ := st.Load(ctx)

	if err := svc.Delete(ctx, n.ID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	after, _ := st.Load(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("store changed by blocked delete")
	}
}

func TestDelete_Unreferenced(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := New(st)

	n, err := svc.Create(ctx, CreateInput{Name: "Lonely Net"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, n.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected network gone, got %v", err)
	}
}
