package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
	"github.com/mindnote-app/mindnote_backend/internal/dto"
	"github.com/mindnote-app/mindnote_backend/internal/middleware"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) LoadEntries(ctx context.Context, userID string) ([]domain.Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) ListEntriesForDay(ctx context.Context, userID string, day time.Time) ([]domain.Entry, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, userID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *MockEntryService) SeedDemoEntries(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---

type EntryHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockEntryService
	jwtSecret string
	userID    string
}

func TestEntryHandlerSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}

func (s *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidations()
	s.mockSvc = new(MockEntryService)
	s.jwtSecret = "test-secret-key-that-is-long-enough"
	s.userID = "user-1"

	s.router = gin.New()
	v1 := s.router.Group("/api/v1", middleware.AuthMiddleware(s.jwtSecret))
	registerEntryRoutes(v1, s.mockSvc)
}

func (s *EntryHandlerTestSuite) bearerToken() string {
	claims := jwt.RegisteredClaims{
		Subject:   s.userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	s.Require().NoError(err)
	return "Bearer " + signed
}

func (s *EntryHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.bearerToken())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *EntryHandlerTestSuite) TestListEntries() {
	entries := []domain.Entry{
		{EntryID: "e1", UserID: s.userID, Date: time.Now(), Note: "hi", Tags: []string{}},
	}
	s.mockSvc.On("LoadEntries", mock.Anything, s.userID).Return(entries, nil)

	w := s.doRequest(http.MethodGet, "/api/v1/entries", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Entries, 1)
	s.Equal("e1", resp.Entries[0].EntryID)
	s.mockSvc.AssertExpectations(s.T())
}

func (s *EntryHandlerTestSuite) TestListEntriesWithDateFilter() {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	s.mockSvc.On("ListEntriesForDay", mock.Anything, s.userID, day).Return([]domain.Entry{}, nil)

	w := s.doRequest(http.MethodGet, "/api/v1/entries?date=2025-06-10", nil)

	s.Equal(http.StatusOK, w.Code)
	s.mockSvc.AssertExpectations(s.T())
}

func (s *EntryHandlerTestSuite) TestListEntriesBadDate() {
	w := s.doRequest(http.MethodGet, "/api/v1/entries?date=10-06-2025", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockSvc.AssertNotCalled(s.T(), "ListEntriesForDay")
}

func (s *EntryHandlerTestSuite) TestCreateEntry() {
	created := &domain.Entry{EntryID: "e-new", UserID: s.userID, Note: "fresh", Tags: []string{}}
	s.mockSvc.On("CreateEntry", mock.Anything, s.userID, mock.AnythingOfType("dto.CreateEntryRequest")).Return(created, nil)

	w := s.doRequest(http.MethodPost, "/api/v1/entries", gin.H{"note": "fresh"})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("e-new", resp.EntryID)
}

func (s *EntryHandlerTestSuite) TestCreateEntryMissingNote() {
	w := s.doRequest(http.MethodPost, "/api/v1/entries", gin.H{"mood": 1})

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockSvc.AssertNotCalled(s.T(), "CreateEntry")
}

func (s *EntryHandlerTestSuite) TestGetEntryNotFound() {
	s.mockSvc.On("GetEntryByID", mock.Anything, s.userID, "missing").Return(nil, apperrors.ErrNotFound)

	w := s.doRequest(http.MethodGet, "/api/v1/entries/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *EntryHandlerTestSuite) TestDeleteEntry() {
	s.mockSvc.On("DeleteEntry", mock.Anything, s.userID, "e1").Return(nil)

	w := s.doRequest(http.MethodDelete, "/api/v1/entries/e1", nil)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *EntryHandlerTestSuite) TestUnauthenticatedRequestRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockSvc.AssertNotCalled(s.T(), "LoadEntries")
}
