package domain

import "time"

// Mood is the small enumerated mood code attached to an entry.
// Out-of-range values are tolerated at the data layer and rendered
// as neutral; they must never be rejected or rewritten on read.
type Mood int

const (
	MoodHappy   Mood = 0
	MoodNeutral Mood = 1
	MoodSad     Mood = 2
)

// Emoji returns the display glyph for the mood. Unknown codes render
// as neutral.
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodNeutral:
		return "😐"
	case MoodSad:
		return "😢"
	default:
		return "😐"
	}
}

// Entry represents a single journal record within the core domain.
// This is the primary representation used by services.
type Entry struct {
	EntryID string    `json:"entryID"` // Primary Key (UUID), assigned by the store on create
	UserID  string    `json:"userID"`  // FK -> users.user_id (NON-NULL)
	Date    time.Time `json:"date"`    // Sole ordering and day-bucketing key
	Note    string    `json:"note"`    // Free-text body
	Mood    Mood      `json:"mood"`
	Tags    []string  `json:"tags"` // Semantically a set; never nil
	Image   ImageRef  `json:"image"`
	AuditFields
}

// NormalizeTags guarantees the never-nil tags invariant and drops
// duplicates while keeping first-seen order.
func (e *Entry) NormalizeTags() {
	if e.Tags == nil {
		e.Tags = []string{}
		return
	}
	seen := make(map[string]struct{}, len(e.Tags))
	out := e.Tags[:0]
	for _, t := range e.Tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	e.Tags = out
}

// HasTag reports whether the entry carries the given tag.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RemoveTag drops the tag from the entry's tag list if present and
// reports whether anything changed.
func (e *Entry) RemoveTag(tag string) bool {
	for i, t := range e.Tags {
		if t == tag {
			e.Tags = append(e.Tags[:i], e.Tags[i+1:]...)
			return true
		}
	}
	return false
}

// JournalStats is the aggregate view shown on the profile screen.
type JournalStats struct {
	EntryCount    int        `json:"entryCount"`
	CurrentStreak int        `json:"currentStreak"`
	LastEntryDate *time.Time `json:"lastEntryDate,omitempty"` // nil when the user has no entries
}
