package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// ContentService serves the seeded revision content: topics grouped by
// subject and the cards within a topic.
type ContentService struct {
	content store.ContentStore
	logger  *slog.Logger
}

// NewContentService creates a ContentService with the given content store.
func NewContentService(content store.ContentStore, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentService{
		content: content,
		logger:  logger.With(slog.String("component", "content_service")),
	}
}

// ListTopicsGrouped returns every topic grouped by subject. Subjects
// are ordered case-insensitively by name and topics within a subject
// case-insensitively by title, so the listing is stable regardless of
// store return order.
func (s *ContentService) ListTopicsGrouped(ctx context.Context) ([]domain.SubjectGroup, error) {
	topics, err := s.content.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	bySubject := make(map[string][]domain.TopicStub)
	for _, t := range topics {
		bySubject[t.Subject] = append(bySubject[t.Subject], domain.TopicStub{
			ID:         t.ID,
			Title:      t.Title,
			EstMinutes: t.EstMinutes,
		})
	}

	groups := make([]domain.SubjectGroup, 0, len(bySubject))
	for subject, stubs := range bySubject {
		slices.SortFunc(stubs, func(a, b domain.TopicStub) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
		groups = append(groups, domain.SubjectGroup{Subject: subject, Topics: stubs})
	}
	slices.SortFunc(groups, func(a, b domain.SubjectGroup) int {
		return strings.Compare(strings.ToLower(a.Subject), strings.ToLower(b.Subject))
	})
	return groups, nil
}

// ListCardsForTopic returns the cards for one topic. An unknown topic
// yields an empty slice, not an error.
func (s *ContentService) ListCardsForTopic(ctx context.Context, topicID string) ([]domain.Card, error) {
	return s.content.ListCards(ctx, topicID)
}
