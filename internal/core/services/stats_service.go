package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
	"github.com/mindnote-app/mindnote_backend/internal/utils/journalstats"
)

// StatsService computes profile statistics from a fresh read of the
// user's entries. Count, streak and last entry date always come from
// the same load, so they are mutually consistent.
type StatsService struct {
	BaseService
	entryRepo portsrepo.EntryReader

	now func() time.Time
	loc *time.Location
}

// StatsServiceOption configures the stats service.
type StatsServiceOption func(*StatsService)

// WithStatsClock overrides the clock, for tests.
func WithStatsClock(now func() time.Time) StatsServiceOption {
	return func(s *StatsService) { s.now = now }
}

// WithStatsLocation sets the location used for calendar-day bucketing.
func WithStatsLocation(loc *time.Location) StatsServiceOption {
	return func(s *StatsService) { s.loc = loc }
}

// NewStatsService creates a new stats service instance.
func NewStatsService(entryRepo portsrepo.EntryReader, opts ...StatsServiceOption) *StatsService {
	svc := &StatsService{
		entryRepo: entryRepo,
		now:       time.Now,
		loc:       time.UTC,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *StatsService) GetStats(ctx context.Context, userID string) (domain.JournalStats, error) {
	entries, err := s.entryRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to load entries for stats", "userID", userID)
		return domain.JournalStats{}, fmt.Errorf("failed to compute stats: %w", err)
	}

	return domain.JournalStats{
		EntryCount:    journalstats.EntryCount(entries),
		CurrentStreak: journalstats.CurrentStreak(entries, s.now(), s.loc),
		LastEntryDate: journalstats.LastEntryDate(entries),
	}, nil
}
