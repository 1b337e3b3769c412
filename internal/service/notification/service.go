// Package notification appends activity records and lists them newest-first.
// Records are append-only; delivery metadata is attached at creation time and
// reflects the outcome of an optional outbound email send.
package notification

import (
	"context"
	"sort"
	"time"

	"editorial-cms/internal/domain"
	"editorial-cms/internal/ident"
	"editorial-cms/internal/store"
)

type Service struct {
	store store.Store
}

func New(st store.Store) *Service {
	return &Service{store: st}
}

// CreateParams carries the notification body plus optional delivery metadata.
type CreateParams struct {
	Type       domain.NotificationType
	Title      string
	Message    string
	ArticleID  string
	Recipients []string
	Subject    string
	HTML       string
	SentAt     *time.Time
	Status     domain.DeliveryStatus
}

// Create appends a notification regardless of any downstream send outcome.
func (s *Service) Create(ctx context.Context, p CreateParams) (*domain.Notification, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	n := domain.Notification{
		ID:             ident.New("notif"),
		Type:           p.Type,
		Title:          p.Title,
		Message:        p.Message,
		ArticleID:      p.ArticleID,
		Read:           false,
		CreatedAt:      time.Now().UTC(),
		Recipients:     p.Recipients,
		RecipientCount: len(p.Recipients),
		Subject:        p.Subject,
		HTML:           p.HTML,
		SentAt:         p.SentAt,
		Status:         p.Status,
	}

	db.Notifications = append(db.Notifications, n)
	if err := s.store.Save(ctx, db); err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns notifications sorted by creation time, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Notification, error) {
	db, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.Notification, len(db.Notifications))
	copy(items, db.Notifications)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
