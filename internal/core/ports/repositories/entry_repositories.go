package repositories

import (
	"context"
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

// EntryReader defines read operations for journal entry documents.
type EntryReader interface {
	// FindEntriesByUser retrieves all of a user's entries ordered by
	// date descending, ties broken by store arrival order.
	FindEntriesByUser(ctx context.Context, userID string) ([]domain.Entry, error)

	// FindEntriesByUserInRange retrieves the user's entries with
	// start <= date < end, same ordering as FindEntriesByUser.
	FindEntriesByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error)

	// FindEntryByID retrieves a specific entry owned by the user.
	FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error)
}

// EntryWriter defines write operations for journal entry documents.
type EntryWriter interface {
	// SaveEntry persists a new entry (EntryID already assigned).
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry replaces the full document for the entry's ID.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntryTags replaces only the tags field of one entry.
	UpdateEntryTags(ctx context.Context, userID string, entryID string, tags []string) error

	// DeleteEntry removes the entry document by ID.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
// This is a facade for clients that need access to all operations
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
