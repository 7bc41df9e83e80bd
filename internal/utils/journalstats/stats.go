// Package journalstats holds the pure aggregate computations over a
// snapshot of journal entries: counts, calendar-day bucketing, and the
// consecutive-day streak. Nothing here performs I/O; services hand in
// whatever snapshot they loaded.
//
// A "day" is a local calendar day identified by (year, day-of-year) in
// the supplied location, not a rolling 24h window. Entries at 23:59 and
// 00:01 on consecutive calendar days land in different buckets even
// though they are two minutes apart. The alternative seen in the wild,
// dividing epoch seconds by 86400, misclassifies day boundaries for any
// non-UTC offset and is deliberately not used.
package journalstats

import (
	"sort"
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

// Day identifies one local calendar day.
type Day struct {
	Year    int
	YearDay int
}

// DayOf returns the calendar day of t in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	lt := t.In(loc)
	return Day{Year: lt.Year(), YearDay: lt.YearDay()}
}

// EntryCount returns the number of entries in the snapshot.
func EntryCount(entries []domain.Entry) int {
	return len(entries)
}

// LastEntryDate returns the maximum entry date, or nil for an empty
// snapshot.
func LastEntryDate(entries []domain.Entry) *time.Time {
	if len(entries) == 0 {
		return nil
	}
	max := entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.After(max) {
			max = e.Date
		}
	}
	return &max
}

// BucketByDay groups entries by their local calendar day in loc.
func BucketByDay(entries []domain.Entry, loc *time.Location) map[Day][]domain.Entry {
	buckets := make(map[Day][]domain.Entry)
	for _, e := range entries {
		d := DayOf(e.Date, loc)
		buckets[d] = append(buckets[d], e)
	}
	return buckets
}

// CurrentStreak returns the number of consecutive calendar days,
// counting backward from today (the day of now in loc), that contain at
// least one entry. The streak must include today: if the most recent
// entry is from yesterday or earlier the streak is 0. Multiple entries
// on one day count that day once and neither extend nor break the walk.
func CurrentStreak(entries []domain.Entry, now time.Time, loc *time.Location) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := make([]domain.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	today := midnight(now, loc)

	streak := 0
	expected := 0
	for _, e := range sorted {
		offset := dayOffset(today, e.Date, loc)
		if offset < 0 {
			// Future-dated entry; cannot anchor or break the walk.
			continue
		}
		switch {
		case offset == expected:
			streak++
			expected++
		case offset > expected:
			// Gap: a day with no entries ends the streak.
			return streak
		default:
			// Another entry on an already-counted day.
		}
	}
	return streak
}

// midnight truncates t to the start of its calendar day in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// dayOffset returns how many calendar days before today the entry's
// day falls (today = 0, yesterday = 1, ...), or -1 for a future day.
// Days are stepped with AddDate so DST transitions cannot shift the
// boundary.
func dayOffset(today time.Time, entryDate time.Time, loc *time.Location) int {
	entryMidnight := midnight(entryDate, loc)
	if entryMidnight.After(today) {
		return -1
	}
	offset := 0
	for cursor := entryMidnight; cursor.Before(today); cursor = cursor.AddDate(0, 0, 1) {
		offset++
	}
	return offset
}
