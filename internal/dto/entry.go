package dto

import (
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

// CreateEntryRequest defines the data needed to create a journal entry.
// EntryID is never accepted from the client; the store assigns it.
type CreateEntryRequest struct {
	Note      string     `json:"note" binding:"required"`
	Mood      int        `json:"mood"`
	Tags      []string   `json:"tags"`
	ImagePath string     `json:"imagePath"`
	Date      *time.Time `json:"date"` // omitted -> server time
}

// ToDomainEntry maps the request onto a transient (unsaved) domain entry.
func (r CreateEntryRequest) ToDomainEntry(userID string) domain.Entry {
	entry := domain.Entry{
		UserID: userID,
		Note:   r.Note,
		Mood:   domain.Mood(r.Mood),
		Tags:   r.Tags,
		Image:  domain.ParseImageRef(r.ImagePath),
	}
	if r.Date != nil {
		entry.Date = *r.Date
	}
	entry.NormalizeTags()
	return entry
}

// UpdateEntryRequest defines the full-replace payload for an existing entry.
type UpdateEntryRequest struct {
	Note      string     `json:"note" binding:"required"`
	Mood      int        `json:"mood"`
	Tags      []string   `json:"tags"`
	ImagePath string     `json:"imagePath"`
	Date      *time.Time `json:"date"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	// Date selects a single local calendar day (calendar screen),
	// formatted 2006-01-02. Empty means the full collection.
	Date string `form:"date" binding:"omitempty,daydate"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID   string    `json:"entryID"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note"`
	Mood      int       `json:"mood"`
	MoodEmoji string    `json:"moodEmoji"`
	Tags      []string  `json:"tags"`
	ImagePath string    `json:"imagePath,omitempty"`
	ImageKind string    `json:"imageKind"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListEntriesResponse wraps the list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntryResponse{
		EntryID:   e.EntryID,
		Date:      e.Date,
		Note:      e.Note,
		Mood:      int(e.Mood),
		MoodEmoji: e.Mood.Emoji(),
		Tags:      tags,
		ImagePath: e.Image.String(),
		ImageKind: string(e.Image.Kind),
		CreatedAt: e.CreatedAt,
	}
}

// ToListEntriesResponse converts a slice of domain.Entry to ListEntriesResponse.
func ToListEntriesResponse(entries []domain.Entry) ListEntriesResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: responses}
}
