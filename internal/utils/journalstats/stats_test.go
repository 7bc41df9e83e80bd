package journalstats_test

import (
	"testing"
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/utils/journalstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOn(t time.Time) domain.Entry {
	return domain.Entry{EntryID: "e-" + t.Format(time.RFC3339), Date: t, Tags: []string{}}
}

func TestEntryCount(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 0, journalstats.EntryCount(nil))
	assert.Equal(t, 3, journalstats.EntryCount([]domain.Entry{
		entryOn(now), entryOn(now.Add(-time.Hour)), entryOn(now.Add(-48 * time.Hour)),
	}))
}

func TestLastEntryDate(t *testing.T) {
	assert.Nil(t, journalstats.LastEntryDate(nil))
	assert.Nil(t, journalstats.LastEntryDate([]domain.Entry{}))

	newest := time.Date(2025, 6, 3, 18, 30, 0, 0, time.UTC)
	entries := []domain.Entry{
		entryOn(newest.AddDate(0, 0, -5)),
		entryOn(newest),
		entryOn(newest.AddDate(0, -1, 0)),
	}
	got := journalstats.LastEntryDate(entries)
	require.NotNil(t, got)
	assert.True(t, got.Equal(newest))
}

func TestBucketByDay_CalendarBoundary(t *testing.T) {
	loc := time.UTC
	// 23:59 and 00:01 on consecutive calendar days: different buckets
	// even though less than 24h apart.
	lateNight := time.Date(2025, 3, 1, 23, 59, 0, 0, loc)
	earlyMorning := time.Date(2025, 3, 2, 0, 1, 0, 0, loc)
	sameDayNoon := time.Date(2025, 3, 2, 12, 0, 0, 0, loc)

	buckets := journalstats.BucketByDay([]domain.Entry{
		entryOn(lateNight), entryOn(earlyMorning), entryOn(sameDayNoon),
	}, loc)

	require.Len(t, buckets, 2)
	assert.Len(t, buckets[journalstats.DayOf(lateNight, loc)], 1)
	assert.Len(t, buckets[journalstats.DayOf(earlyMorning, loc)], 2)
}

func TestCurrentStreak(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, loc)
	today := now.Add(-2 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	dayBefore := now.AddDate(0, 0, -2)
	threeDaysAgo := now.AddDate(0, 0, -3)

	tests := []struct {
		name    string
		entries []domain.Entry
		want    int
	}{
		{"empty sequence", nil, 0},
		{"three consecutive days ending today", []domain.Entry{
			entryOn(today), entryOn(yesterday), entryOn(dayBefore),
		}, 3},
		{"gap after today", []domain.Entry{
			entryOn(today), entryOn(threeDaysAgo),
		}, 1},
		{"same-day duplicates neither inflate nor break", []domain.Entry{
			entryOn(today), entryOn(today.Add(-time.Hour)), entryOn(yesterday),
		}, 2},
		{"no entry today means no streak", []domain.Entry{
			entryOn(yesterday), entryOn(dayBefore),
		}, 0},
		{"single entry today", []domain.Entry{entryOn(today)}, 1},
		{"input order does not matter", []domain.Entry{
			entryOn(dayBefore), entryOn(today), entryOn(yesterday),
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, journalstats.CurrentStreak(tt.entries, now, loc))
		})
	}
}

func TestCurrentStreak_CalendarDayNotRollingWindow(t *testing.T) {
	loc := time.UTC
	// "Today" just after midnight; yesterday's entry was late evening.
	// Less than 24h apart but two distinct calendar days.
	now := time.Date(2025, 6, 10, 0, 30, 0, 0, loc)
	lateYesterday := time.Date(2025, 6, 9, 23, 0, 0, 0, loc)
	early := time.Date(2025, 6, 10, 0, 10, 0, 0, loc)

	got := journalstats.CurrentStreak([]domain.Entry{entryOn(early), entryOn(lateYesterday)}, now, loc)
	assert.Equal(t, 2, got)
}

func TestCurrentStreak_FutureEntriesIgnored(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, loc)

	got := journalstats.CurrentStreak([]domain.Entry{
		entryOn(now.AddDate(0, 0, 2)), // scheduled ahead; skipped
		entryOn(now.Add(-time.Hour)),
		entryOn(now.AddDate(0, 0, -1)),
	}, now, loc)
	assert.Equal(t, 2, got)
}

func TestCurrentStreak_NonUTCDayBoundary(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 01:00 local on June 10 is June 9 in UTC; day identity must follow
	// the local calendar.
	now := time.Date(2025, 6, 10, 1, 0, 0, 0, loc)
	todayLocal := time.Date(2025, 6, 10, 0, 30, 0, 0, loc)
	yesterdayLocal := time.Date(2025, 6, 9, 22, 0, 0, 0, loc)

	got := journalstats.CurrentStreak([]domain.Entry{entryOn(todayLocal), entryOn(yesterdayLocal)}, now, loc)
	assert.Equal(t, 2, got)
}
