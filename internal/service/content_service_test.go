package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
)

func TestListTopicsGroupedSortsSubjectsAndTitles(t *testing.T) {
	content := newFakeContentStore()
	content.topics = []domain.Topic{
		{ID: "waves-1", Subject: "Physics", Title: "waves", EstMinutes: 20},
		{ID: "cells-1", Subject: "biology", Title: "Cells", EstMinutes: 15},
		{ID: "algebra-2", Subject: "maths", Title: "quadratics", EstMinutes: 25},
		{ID: "algebra-1", Subject: "maths", Title: "Algebra basics", EstMinutes: 10},
	}
	s := NewContentService(content, nil)

	groups, err := s.ListTopicsGrouped(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// Subjects sort case-insensitively by name.
	assert.Equal(t, "biology", groups[0].Subject)
	assert.Equal(t, "maths", groups[1].Subject)
	assert.Equal(t, "Physics", groups[2].Subject)

	// Topics sort case-insensitively by title within a subject.
	require.Len(t, groups[1].Topics, 2)
	assert.Equal(t, "algebra-1", groups[1].Topics[0].ID)
	assert.Equal(t, "algebra-2", groups[1].Topics[1].ID)
	assert.Equal(t, 10, groups[1].Topics[0].EstMinutes)
}

func TestListTopicsGroupedEmpty(t *testing.T) {
	s := NewContentService(newFakeContentStore(), nil)

	groups, err := s.ListTopicsGrouped(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestListCardsForTopicUnknownTopic(t *testing.T) {
	s := NewContentService(newFakeContentStore(), nil)

	cards, err := s.ListCardsForTopic(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
