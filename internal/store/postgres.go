package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"editorial-cms/internal/domain"
)

// documentName keys the single snapshot row in the documents table.
const documentName = "editorial"

// PostgresStore keeps the snapshot as one jsonb row. The table is created by
// the migrations in internal/migrate; the snapshot semantics are identical to
// the file store, Postgres only supplies durable shared storage.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context) (*domain.Database, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM documents WHERE name = $1`, documentName,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewDatabase(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	db := domain.NewDatabase()
	if err := json.Unmarshal(raw, db); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) Save(ctx context.Context, db *domain.Database) error {
	raw, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, documentName, raw)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
