package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/core/services"
)

func TestGetStatsFromSingleLoad(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	entries := []domain.Entry{
		{EntryID: "e1", Date: now.Add(-time.Hour)},
		{EntryID: "e2", Date: now.AddDate(0, 0, -1)},
		{EntryID: "e3", Date: now.AddDate(0, 0, -2)},
		{EntryID: "e4", Date: now.AddDate(0, 0, -10)},
	}
	repo := new(MockEntryRepository)
	repo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		return entries, nil
	}

	svc := services.NewStatsService(repo, services.WithStatsClock(func() time.Time { return now }))

	stats, err := svc.GetStats(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 4, stats.EntryCount)
	require.Equal(t, 3, stats.CurrentStreak)
	require.NotNil(t, stats.LastEntryDate)
	require.Equal(t, now.Add(-time.Hour), *stats.LastEntryDate)
}

func TestGetStatsEmptyJournal(t *testing.T) {
	repo := new(MockEntryRepository)
	repo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		return nil, nil
	}

	svc := services.NewStatsService(repo)

	stats, err := svc.GetStats(context.Background(), "u1")
	require.NoError(t, err)
	require.Zero(t, stats.EntryCount)
	require.Zero(t, stats.CurrentStreak)
	require.Nil(t, stats.LastEntryDate)
}
