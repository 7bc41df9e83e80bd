package services

import (
	"context"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

// StatsSvcFacade defines the aggregate statistics operations.
type StatsSvcFacade interface {
	// GetStats computes entry count, current streak and last entry
	// date from a fresh load of the user's entries.
	GetStats(ctx context.Context, userID string) (domain.JournalStats, error)
}
