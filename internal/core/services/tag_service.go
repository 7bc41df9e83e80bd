package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mindnote-app/mindnote_backend/internal/apperrors"
	portsrepo "github.com/mindnote-app/mindnote_backend/internal/core/ports/repositories"
)

// TagService manages the user's global tag set and keeps entries
// consistent when a tag is deleted.
type TagService struct {
	BaseService
	tagRepo   portsrepo.TagRepositoryFacade
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewTagService creates a new tag service instance.
func NewTagService(tagRepo portsrepo.TagRepositoryFacade, entryRepo portsrepo.EntryRepositoryFacade) *TagService {
	return &TagService{tagRepo: tagRepo, entryRepo: entryRepo}
}

func (s *TagService) GetTags(ctx context.Context, userID string) ([]string, error) {
	tags, err := s.tagRepo.FindTagSet(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []string{}, nil
		}
		s.LogError(ctx, err, "failed to load tag set", "userID", userID)
		return nil, fmt.Errorf("failed to load tag set: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (s *TagService) ReplaceTags(ctx context.Context, userID string, tags []string) ([]string, error) {
	normalized := normalizeTagList(tags)
	if err := s.tagRepo.SaveTagSet(ctx, userID, normalized); err != nil {
		s.LogError(ctx, err, "failed to save tag set", "userID", userID)
		return nil, fmt.Errorf("failed to save tag set: %w", err)
	}
	return normalized, nil
}

// DeleteTagEverywhere removes the tag from the saved tag set, then
// strips it from each entry that carries it. Entry updates are best
// effort: a failure on one entry is logged and the sweep continues, so
// a partial failure leaves some entries still tagged rather than
// aborting the whole operation.
func (s *TagService) DeleteTagEverywhere(ctx context.Context, userID string, tag string) (int, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return 0, fmt.Errorf("tag must not be empty: %w", apperrors.ErrValidation)
	}

	current, err := s.GetTags(ctx, userID)
	if err != nil {
		return 0, err
	}

	remaining := make([]string, 0, len(current))
	for _, t := range current {
		if t != tag {
			remaining = append(remaining, t)
		}
	}
	if err := s.tagRepo.SaveTagSet(ctx, userID, remaining); err != nil {
		s.LogError(ctx, err, "failed to save tag set", "userID", userID, "tag", tag)
		return 0, fmt.Errorf("failed to save tag set: %w", err)
	}

	entries, err := s.entryRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to load entries for tag sweep", "userID", userID, "tag", tag)
		return 0, fmt.Errorf("failed to load entries: %w", err)
	}

	modified := 0
	for i := range entries {
		entry := entries[i]
		if !entry.HasTag(tag) {
			continue
		}
		entry.RemoveTag(tag)
		if err := s.entryRepo.UpdateEntryTags(ctx, userID, entry.EntryID, entry.Tags); err != nil {
			s.LogError(ctx, err, "failed to strip tag from entry", "entryID", entry.EntryID, "tag", tag)
			continue
		}
		modified++
	}

	s.LogInfo(ctx, "tag deleted", "tag", tag, "entriesModified", modified)
	return modified, nil
}

// normalizeTagList trims whitespace, drops empties and deduplicates
// while keeping first-seen order. Never returns nil.
func normalizeTagList(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
