package models

import "time"

// Entry is the database representation of a journal entry document.
// Tags map to a text[] column; ImagePath holds the single-string image
// reference ("" = none, demo marker, or URL).
type Entry struct {
	EntryID   string    `json:"entryID"`
	UserID    string    `json:"userID"`
	Date      time.Time `json:"date"`
	Note      string    `json:"note"`
	Mood      int       `json:"mood"`
	Tags      []string  `json:"tags"`
	ImagePath string    `json:"imagePath"`
	AuditFields
}
