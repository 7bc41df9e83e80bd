package services

import "context"

// TagSvcFacade defines operations on the user's global tag set.
type TagSvcFacade interface {
	// GetTags returns the user's saved tag set, empty (never nil) when
	// none has been saved yet.
	GetTags(ctx context.Context, userID string) ([]string, error)

	// ReplaceTags overwrites the tag set with the given list and
	// returns the normalized result.
	ReplaceTags(ctx context.Context, userID string, tags []string) ([]string, error)

	// DeleteTagEverywhere removes the tag from the tag set and strips
	// it from every entry that carries it. Returns the number of
	// entries modified. Per-entry failures are logged and skipped.
	DeleteTagEverywhere(ctx context.Context, userID string, tag string) (int, error)
}
