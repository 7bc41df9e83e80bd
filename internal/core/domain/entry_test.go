package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindnote-app/mindnote_backend/internal/core/domain"
)

func TestMoodEmoji(t *testing.T) {
	tests := []struct {
		name string
		mood domain.Mood
		want string
	}{
		{"happy", domain.MoodHappy, "😊"},
		{"neutral", domain.MoodNeutral, "😐"},
		{"sad", domain.MoodSad, "😢"},
		{"unknown code renders neutral", domain.Mood(7), "😐"},
		{"negative code renders neutral", domain.Mood(-1), "😐"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mood.Emoji())
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	e := domain.Entry{Tags: []string{"work", "life", "work"}}
	e.NormalizeTags()
	assert.Equal(t, []string{"work", "life"}, e.Tags)

	var empty domain.Entry
	empty.NormalizeTags()
	assert.NotNil(t, empty.Tags)
	assert.Empty(t, empty.Tags)
}
