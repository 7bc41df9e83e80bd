package repositories

import (
	"context"
)

// TagSetReader defines read operations for the per-user global tag set.
type TagSetReader interface {
	// FindTagSet retrieves the user's tag set. A user with no stored
	// set gets an empty slice, not an error.
	FindTagSet(ctx context.Context, userID string) ([]string, error)
}

// TagSetWriter defines write operations for the per-user global tag set.
type TagSetWriter interface {
	// SaveTagSet persists the full replacement set (not incremental).
	SaveTagSet(ctx context.Context, userID string, tags []string) error
}

// TagRepositoryFacade combines all tag-set repository interfaces.
type TagRepositoryFacade interface {
	TagSetReader
	TagSetWriter
}
