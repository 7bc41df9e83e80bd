package dto

import (
	"time"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

// StatsResponse defines the aggregate view for the profile screen.
type StatsResponse struct {
	EntryCount    int        `json:"entryCount"`
	CurrentStreak int        `json:"currentStreak"`
	LastEntryDate *time.Time `json:"lastEntryDate,omitempty"`
}

// ToStatsResponse converts domain.JournalStats to StatsResponse DTO.
func ToStatsResponse(s domain.JournalStats) StatsResponse {
	return StatsResponse{
		EntryCount:    s.EntryCount,
		CurrentStreak: s.CurrentStreak,
		LastEntryDate: s.LastEntryDate,
	}
}
