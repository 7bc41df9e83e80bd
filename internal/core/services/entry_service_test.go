package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/core/services"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
)

// --- Mock EntryRepository (based on EntryService usage) ---
type MockEntryRepository struct {
	mock.Mock
	FindEntriesByUserFn        func(ctx context.Context, userID string) ([]domain.Entry, error)
	FindEntriesByUserInRangeFn func(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error)
	FindEntryByIDFn            func(ctx context.Context, userID string, entryID string) (*domain.Entry, error)
	SaveEntryFn                func(ctx context.Context, entry domain.Entry) error
	UpdateEntryFn              func(ctx context.Context, entry domain.Entry) error
	UpdateEntryTagsFn          func(ctx context.Context, userID string, entryID string, tags []string) error
	DeleteEntryFn              func(ctx context.Context, userID string, entryID string) error
}

func (m *MockEntryRepository) FindEntriesByUser(ctx context.Context, userID string) ([]domain.Entry, error) {
	if m.FindEntriesByUserFn != nil {
		return m.FindEntriesByUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) FindEntriesByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error) {
	if m.FindEntriesByUserInRangeFn != nil {
		return m.FindEntriesByUserInRangeFn(ctx, userID, start, end)
	}
	args := m.Called(ctx, userID, start, end)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error) {
	if m.FindEntryByIDFn != nil {
		return m.FindEntryByIDFn(ctx, userID, entryID)
	}
	args := m.Called(ctx, userID, entryID)
	var entry *domain.Entry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.Entry)
	}
	return entry, args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	if m.SaveEntryFn != nil {
		return m.SaveEntryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	if m.UpdateEntryFn != nil {
		return m.UpdateEntryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntryTags(ctx context.Context, userID string, entryID string, tags []string) error {
	if m.UpdateEntryTagsFn != nil {
		return m.UpdateEntryTagsFn(ctx, userID, entryID, tags)
	}
	args := m.Called(ctx, userID, entryID, tags)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	if m.DeleteEntryFn != nil {
		return m.DeleteEntryFn(ctx, userID, entryID)
	}
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }

func (m *MockEntryRepository) Commit(ctx context.Context, tx pgx.Tx) error { return nil }

func (m *MockEntryRepository) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }

// --- Test Suite ---

type EntryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	ctx      context.Context
	now      time.Time
}

func TestEntryServiceSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}

func (s *EntryServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockEntryRepository)
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
}

func (s *EntryServiceTestSuite) newService() *services.EntryService {
	return services.NewEntryService(s.mockRepo, services.WithEntryClock(func() time.Time { return s.now }))
}

func (s *EntryServiceTestSuite) TestLoadEntriesRefreshesSnapshot() {
	svc := s.newService()
	entries := []domain.Entry{
		{EntryID: "e1", UserID: "u1", Date: s.now, Note: "first"},
		{EntryID: "e2", UserID: "u1", Date: s.now.AddDate(0, 0, -1), Note: "second"},
	}
	s.mockRepo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		s.Equal("u1", userID)
		return entries, nil
	}

	loaded, err := svc.LoadEntries(s.ctx, "u1")
	s.Require().NoError(err)
	s.Len(loaded, 2)

	got, err := svc.GetEntryByID(s.ctx, "u1", "e2")
	s.Require().NoError(err)
	s.Equal("second", got.Note)
}

func (s *EntryServiceTestSuite) TestGetEntryByIDBeforeLoadIsNotFound() {
	svc := s.newService()

	_, err := svc.GetEntryByID(s.ctx, "u1", "e1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EntryServiceTestSuite) TestGetEntryByIDIsScopedPerUser() {
	svc := s.newService()
	s.mockRepo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		return []domain.Entry{{EntryID: "e1", UserID: "u1", Note: "mine"}}, nil
	}
	_, err := svc.LoadEntries(s.ctx, "u1")
	s.Require().NoError(err)

	_, err = svc.GetEntryByID(s.ctx, "other-user", "e1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EntryServiceTestSuite) TestFailedLoadLeavesSnapshotUntouched() {
	svc := s.newService()
	s.mockRepo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		return []domain.Entry{{EntryID: "e1", UserID: "u1", Note: "kept"}}, nil
	}
	_, err := svc.LoadEntries(s.ctx, "u1")
	s.Require().NoError(err)

	s.mockRepo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		return nil, errors.New("store unreachable")
	}
	_, err = svc.LoadEntries(s.ctx, "u1")
	s.Require().Error(err)

	// The failed load did not clobber the last good snapshot.
	got, err := svc.GetEntryByID(s.ctx, "u1", "e1")
	s.Require().NoError(err)
	s.Equal("kept", got.Note)
}

func (s *EntryServiceTestSuite) TestCreateDoesNotTouchSnapshot() {
	svc := s.newService()
	s.mockRepo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		return nil, nil
	}
	s.mockRepo.SaveEntryFn = func(ctx context.Context, entry domain.Entry) error { return nil }

	_, err := svc.LoadEntries(s.ctx, "u1")
	s.Require().NoError(err)

	created, err := svc.CreateEntry(s.ctx, "u1", dto.CreateEntryRequest{Note: "hello"})
	s.Require().NoError(err)

	// The write went to the store, not the snapshot. A new load is
	// needed before the ID resolves.
	_, err = svc.GetEntryByID(s.ctx, "u1", created.EntryID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EntryServiceTestSuite) TestCreateEntryAssignsIDAndDefaultsDate() {
	svc := s.newService()
	var saved domain.Entry
	s.mockRepo.SaveEntryFn = func(ctx context.Context, entry domain.Entry) error {
		saved = entry
		return nil
	}

	created, err := svc.CreateEntry(s.ctx, "u1", dto.CreateEntryRequest{
		Note: "hello",
		Mood: int(domain.MoodSad),
		Tags: []string{"a", "a", "b"},
	})
	s.Require().NoError(err)
	s.NotEmpty(created.EntryID)
	s.Equal(created.EntryID, saved.EntryID)
	s.Equal(s.now, saved.Date)
	s.Equal([]string{"a", "b"}, saved.Tags)
	s.Equal(domain.MoodSad, saved.Mood)
}

func (s *EntryServiceTestSuite) TestCreateEntryToleratesOutOfRangeMood() {
	svc := s.newService()
	var saved domain.Entry
	s.mockRepo.SaveEntryFn = func(ctx context.Context, entry domain.Entry) error {
		saved = entry
		return nil
	}

	// Unknown mood codes pass through untouched; renderers fall back
	// to neutral, the data layer never rejects or rewrites them.
	created, err := svc.CreateEntry(s.ctx, "u1", dto.CreateEntryRequest{Note: "odd mood", Mood: 7})
	s.Require().NoError(err)
	s.Equal(domain.Mood(7), created.Mood)
	s.Equal(domain.Mood(7), saved.Mood)
}

func (s *EntryServiceTestSuite) TestCreateEntryRejectsEmptyNote() {
	svc := s.newService()

	_, err := svc.CreateEntry(s.ctx, "u1", dto.CreateEntryRequest{Note: "   "})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EntryServiceTestSuite) TestUpdateEntryRejectsEmptyID() {
	svc := s.newService()

	_, err := svc.UpdateEntry(s.ctx, "u1", "", dto.UpdateEntryRequest{Note: "x"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EntryServiceTestSuite) TestUpdateEntryKeepsStoredDateWhenOmitted() {
	svc := s.newService()
	originalDate := s.now.AddDate(0, 0, -3)
	existing := &domain.Entry{EntryID: "e1", UserID: "u1", Date: originalDate, Note: "old"}
	existing.CreatedAt = originalDate

	s.mockRepo.FindEntryByIDFn = func(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
		return existing, nil
	}
	var updated domain.Entry
	s.mockRepo.UpdateEntryFn = func(ctx context.Context, entry domain.Entry) error {
		updated = entry
		return nil
	}

	result, err := svc.UpdateEntry(s.ctx, "u1", "e1", dto.UpdateEntryRequest{Note: "new", Mood: 2})
	s.Require().NoError(err)
	s.Equal(originalDate, result.Date)
	s.Equal(originalDate, updated.CreatedAt)
	s.Equal("new", updated.Note)
	s.Equal(s.now, updated.LastUpdatedAt)
}

func (s *EntryServiceTestSuite) TestUpdateEntryMissingEntry() {
	svc := s.newService()
	s.mockRepo.FindEntryByIDFn = func(ctx context.Context, userID, entryID string) (*domain.Entry, error) {
		return nil, apperrors.ErrNotFound
	}

	_, err := svc.UpdateEntry(s.ctx, "u1", "nope", dto.UpdateEntryRequest{Note: "x"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *EntryServiceTestSuite) TestDeleteEntryRejectsEmptyID() {
	svc := s.newService()

	err := svc.DeleteEntry(s.ctx, "u1", " ")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EntryServiceTestSuite) TestListEntriesForDayUsesDayBounds() {
	svc := s.newService()
	day := time.Date(2025, 6, 10, 17, 45, 0, 0, time.UTC)

	var gotStart, gotEnd time.Time
	s.mockRepo.FindEntriesByUserInRangeFn = func(ctx context.Context, userID string, start, end time.Time) ([]domain.Entry, error) {
		gotStart, gotEnd = start, end
		return []domain.Entry{{EntryID: "e1"}}, nil
	}

	entries, err := svc.ListEntriesForDay(s.ctx, "u1", day)
	s.Require().NoError(err)
	s.Len(entries, 1)
	s.Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), gotStart)
	s.Equal(time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), gotEnd)
}

func (s *EntryServiceTestSuite) TestSeedDemoEntriesWritesThreeConsecutiveDays() {
	var saved []domain.Entry
	s.mockRepo.SaveEntryFn = func(ctx context.Context, entry domain.Entry) error {
		saved = append(saved, entry)
		return nil
	}

	tagRepo := new(MockTagRepository)
	var seededTags []string
	tagRepo.SaveTagSetFn = func(ctx context.Context, userID string, tags []string) error {
		seededTags = tags
		return nil
	}
	svc := services.NewEntryService(s.mockRepo,
		services.WithEntryClock(func() time.Time { return s.now }),
		services.WithDemoTagWriter(tagRepo))

	err := svc.SeedDemoEntries(s.ctx, "u1")
	s.Require().NoError(err)
	s.Require().Len(saved, 3)
	s.NotEmpty(seededTags)

	s.Equal(s.now, saved[0].Date)
	s.Equal(s.now.AddDate(0, 0, -1), saved[1].Date)
	s.Equal(s.now.AddDate(0, 0, -2), saved[2].Date)
	for _, entry := range saved {
		s.Equal("u1", entry.UserID)
		s.NotEmpty(entry.EntryID)
		s.Equal(domain.ImageDemo, entry.Image.Kind)
		s.NotEmpty(entry.Note)
	}
}

func TestLoadEntriesPropagatesRepositoryError(t *testing.T) {
	repo := new(MockEntryRepository)
	repo.FindEntriesByUserFn = func(ctx context.Context, userID string) ([]domain.Entry, error) {
		return nil, context.DeadlineExceeded
	}
	svc := services.NewEntryService(repo)

	_, err := svc.LoadEntries(context.Background(), "u1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
