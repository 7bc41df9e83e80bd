package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
)

// EntryService implements journal entry CRUD on top of the entry
// repository, with a per-user read snapshot.
//
// The snapshot is refreshed only by LoadEntries. Create, update and
// delete write through to the store and leave the snapshot untouched;
// clients list again to observe their own writes. GetEntryByID reads
// exclusively from the snapshot, so an ID is resolvable only after a
// load that contained it.
type EntryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryWithTx
	tagWriter portsrepo.TagSetWriter // optional; demo seeding also populates the tag set

	mu        sync.RWMutex
	snapshots map[string][]domain.Entry // userID -> last loaded entries, newest first

	now func() time.Time
}

// EntryServiceOption configures the entry service.
type EntryServiceOption func(*EntryService)

// WithEntryClock overrides the clock, for tests.
func WithEntryClock(now func() time.Time) EntryServiceOption {
	return func(s *EntryService) { s.now = now }
}

// WithDemoTagWriter lets demo seeding save the seeded entries' tags as
// the user's initial tag set.
func WithDemoTagWriter(w portsrepo.TagSetWriter) EntryServiceOption {
	return func(s *EntryService) { s.tagWriter = w }
}

// NewEntryService creates a new entry service instance.
func NewEntryService(entryRepo portsrepo.EntryRepositoryWithTx, opts ...EntryServiceOption) *EntryService {
	svc := &EntryService{
		entryRepo: entryRepo,
		snapshots: make(map[string][]domain.Entry),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *EntryService) LoadEntries(ctx context.Context, userID string) ([]domain.Entry, error) {
	entries, err := s.entryRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to load entries", "userID", userID)
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	snapshot := make([]domain.Entry, len(entries))
	copy(snapshot, entries)

	s.mu.Lock()
	s.snapshots[userID] = snapshot
	s.mu.Unlock()

	return entries, nil
}

func (s *EntryService) ListEntriesForDay(ctx context.Context, userID string, day time.Time) ([]domain.Entry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	entries, err := s.entryRepo.FindEntriesByUserInRange(ctx, userID, start, end)
	if err != nil {
		s.LogError(ctx, err, "failed to list entries for day", "userID", userID, "day", start)
		return nil, fmt.Errorf("failed to list entries for day: %w", err)
	}
	return entries, nil
}

func (s *EntryService) GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error) {
	s.mu.RLock()
	snapshot := s.snapshots[userID]
	s.mu.RUnlock()

	for i := range snapshot {
		if snapshot[i].EntryID == entryID {
			entry := snapshot[i]
			return &entry, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *EntryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	if strings.TrimSpace(req.Note) == "" {
		return nil, fmt.Errorf("note must not be empty: %w", apperrors.ErrValidation)
	}

	entry := req.ToDomainEntry(userID)
	entry.EntryID = uuid.NewString()
	now := s.now()
	if entry.Date.IsZero() {
		entry.Date = now
	}
	entry.CreatedAt = now
	entry.LastUpdatedAt = now

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to save entry", "userID", userID, "entryID", entry.EntryID)
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	s.LogInfo(ctx, "entry created", "entryID", entry.EntryID)
	return &entry, nil
}

func (s *EntryService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	if strings.TrimSpace(entryID) == "" {
		return nil, fmt.Errorf("entry ID must not be empty: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Note) == "" {
		return nil, fmt.Errorf("note must not be empty: %w", apperrors.ErrValidation)
	}

	existing, err := s.entryRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry := domain.Entry{
		EntryID: existing.EntryID,
		UserID:  userID,
		Date:    existing.Date,
		Note:    req.Note,
		Mood:    domain.Mood(req.Mood),
		Tags:    req.Tags,
		Image:   domain.ParseImageRef(req.ImagePath),
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}
	entry.NormalizeTags()
	entry.CreatedAt = existing.CreatedAt
	entry.LastUpdatedAt = s.now()

	if err := s.entryRepo.UpdateEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to update entry", "userID", userID, "entryID", entryID)
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &entry, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	if strings.TrimSpace(entryID) == "" {
		return fmt.Errorf("entry ID must not be empty: %w", apperrors.ErrValidation)
	}
	if err := s.entryRepo.DeleteEntry(ctx, userID, entryID); err != nil {
		s.LogError(ctx, err, "failed to delete entry", "userID", userID, "entryID", entryID)
		return err
	}
	s.LogInfo(ctx, "entry deleted", "entryID", entryID)
	return nil
}

// SeedDemoEntries writes three sample entries dated today, yesterday
// and two days ago, so a fresh account opens on a populated journal
// with a visible streak.
func (s *EntryService) SeedDemoEntries(ctx context.Context, userID string) error {
	now := s.now()
	seeds := []struct {
		daysAgo int
		note    string
		mood    domain.Mood
		tags    []string
		image   domain.ImageRef
	}{
		{
			daysAgo: 0,
			note:    "Spent the evening at the beach with family. Watching the sunset together reminded me how much these small moments matter.",
			mood:    domain.MoodHappy,
			tags:    []string{"family", "gratitude"},
			image:   domain.DemoImage(domain.DemoFamilySunset),
		},
		{
			daysAgo: 1,
			note:    "Woke up early and meditated as the sun came up. Felt calm and focused for the rest of the day.",
			mood:    domain.MoodNeutral,
			tags:    []string{"meditation", "morning"},
			image:   domain.DemoImage(domain.DemoMeditationSunrise),
		},
		{
			daysAgo: 2,
			note:    "Had an idea for a side project while walking home. Wrote it down before it slipped away.",
			mood:    domain.MoodHappy,
			tags:    []string{"ideas"},
			image:   domain.DemoImage(domain.DemoLightbulb),
		},
	}

	var seedTags []string
	seen := make(map[string]struct{})
	for _, seed := range seeds {
		entry := domain.Entry{
			EntryID: uuid.NewString(),
			UserID:  userID,
			Date:    now.AddDate(0, 0, -seed.daysAgo),
			Note:    seed.note,
			Mood:    seed.mood,
			Tags:    seed.tags,
			Image:   seed.image,
		}
		entry.CreatedAt = now
		entry.LastUpdatedAt = now

		if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
			s.LogError(ctx, err, "failed to seed demo entry", "userID", userID)
			return fmt.Errorf("failed to seed demo entries: %w", err)
		}
		for _, tag := range seed.tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			seedTags = append(seedTags, tag)
		}
	}

	if s.tagWriter != nil {
		if err := s.tagWriter.SaveTagSet(ctx, userID, seedTags); err != nil {
			s.LogError(ctx, err, "failed to seed tag set", "userID", userID)
		}
	}

	s.LogInfo(ctx, "demo entries seeded", "userID", userID, "count", len(seeds))
	return nil
}
