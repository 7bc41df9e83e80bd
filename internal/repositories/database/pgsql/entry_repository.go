package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
	"github.com/mindnote-app/mindnote_backend/internal/models"
	"github.com/mindnote-app/mindnote_backend/internal/utils/mapping"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for journal entries.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, user_id, date, note, mood, tags, image_path, created_at, last_updated_at`

func scanEntry(row pgx.CollectableRow) (models.Entry, error) {
	var e models.Entry
	err := row.Scan(
		&e.EntryID,
		&e.UserID,
		&e.Date,
		&e.Note,
		&e.Mood,
		&e.Tags,
		&e.ImagePath,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	return e, err
}

// FindEntriesByUser retrieves all of a user's entries, newest first.
// Ties on date fall back to creation order so freshly written entries
// surface above older same-dated ones.
func (r *PgxEntryRepository) FindEntriesByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan entries: %w", err)
	}
	return mapping.ToDomainEntrySlice(modelEntries), nil
}

// FindEntriesByUserInRange retrieves entries with start <= date < end.
func (r *PgxEntryRepository) FindEntriesByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries in range: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to scan entries: %w", err)
	}
	return mapping.ToDomainEntrySlice(modelEntries), nil
}

// FindEntryByID retrieves one entry owned by the user.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1 AND entry_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry %s: %w", entryID, err)
	}
	defer rows.Close()

	modelEntry, err := pgx.CollectOneRow(rows, scanEntry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainEntry(modelEntry)
	return &domainEntry, nil
}

// SaveEntry inserts a new entry document.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	modelEntry := mapping.ToModelEntry(entry)
	query := `
		INSERT INTO entries (entry_id, user_id, date, note, mood, tags, image_path, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.UserID,
		modelEntry.Date,
		modelEntry.Note,
		modelEntry.Mood,
		modelEntry.Tags,
		modelEntry.ImagePath,
		modelEntry.CreatedAt,
		modelEntry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save entry %s: %w", modelEntry.EntryID, err)
	}
	return nil
}

// UpdateEntry replaces the full document of an existing entry.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	modelEntry := mapping.ToModelEntry(entry)
	query := `
		UPDATE entries
		SET date = $3, note = $4, mood = $5, tags = $6, image_path = $7, last_updated_at = $8
		WHERE user_id = $1 AND entry_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelEntry.UserID,
		modelEntry.EntryID,
		modelEntry.Date,
		modelEntry.Note,
		modelEntry.Mood,
		modelEntry.Tags,
		modelEntry.ImagePath,
		modelEntry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", modelEntry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEntryTags replaces only the tags field of one entry.
func (r *PgxEntryRepository) UpdateEntryTags(ctx context.Context, userID string, entryID string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	query := `
		UPDATE entries
		SET tags = $3, last_updated_at = NOW()
		WHERE user_id = $1 AND entry_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, entryID, tags)
	if err != nil {
		return fmt.Errorf("failed to update tags for entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes the entry document by ID.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	query := `DELETE FROM entries WHERE user_id = $1 AND entry_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
