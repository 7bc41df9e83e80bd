package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
)

// PgxTagRepository stores the per-user global tag set as a single row,
// mirroring the one sentinel document the tag set used to live in.
type PgxTagRepository struct {
	BaseRepository
}

// newPgxTagRepository creates a new repository for tag sets.
func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

// FindTagSet retrieves the user's tag set. No row means no set was
// ever saved; callers get an empty slice.
func (r *PgxTagRepository) FindTagSet(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT tags FROM tag_sets WHERE user_id = $1;`

	var tags []string
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&tags)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to find tag set: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// SaveTagSet upserts the full replacement tag set.
func (r *PgxTagRepository) SaveTagSet(ctx context.Context, userID string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	query := `
		INSERT INTO tag_sets (user_id, tags, created_at, last_updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			tags = EXCLUDED.tags,
			last_updated_at = NOW();
	`
	_, err := r.Pool.Exec(ctx, query, userID, tags)
	if err != nil {
		return fmt.Errorf("failed to save tag set: %w", err)
	}
	return nil
}
