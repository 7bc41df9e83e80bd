package services

import (
	"context"
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
)

// EntrySvcFacade defines the journal entry operations exposed to handlers.
type EntrySvcFacade interface {
	// LoadEntries fetches all of the user's entries from the store,
	// newest first, and refreshes the in-memory snapshot.
	LoadEntries(ctx context.Context, userID string) ([]domain.Entry, error)

	// ListEntriesForDay fetches the user's entries whose date falls on
	// the given calendar day.
	ListEntriesForDay(ctx context.Context, userID string, day time.Time) ([]domain.Entry, error)

	// GetEntryByID resolves an entry from the last loaded snapshot.
	// Returns apperrors.ErrNotFound when no snapshot holds the ID.
	GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error)

	// CreateEntry persists a new entry and returns it with its
	// store-assigned ID.
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error)

	// UpdateEntry replaces the full document of an existing entry.
	UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)

	// DeleteEntry removes an entry by ID.
	DeleteEntry(ctx context.Context, userID string, entryID string) error

	// SeedDemoEntries writes the first-run demo entries for a fresh account.
	SeedDemoEntries(ctx context.Context, userID string) error
}
