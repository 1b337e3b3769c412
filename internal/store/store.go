// Package store persists the whole-store snapshot. Every logical operation
// performs one Load, computes in memory and performs at most one Save; there
// is no locking or versioning, so concurrent writers racing between Load and
// Save lose updates (last write wins). That is documented, accepted behavior.
package store

import (
	"context"

	"editorial-cms/internal/domain"
)

type Store interface {
	// Load reads the entire document graph. An empty backing document yields
	// an empty, non-nil Database.
	Load(ctx context.Context) (*domain.Database, error)
	// Save rewrites the entire document graph atomically.
	Save(ctx context.Context, db *domain.Database) error
}
