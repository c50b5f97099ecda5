package store

import (
	"context"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
)

// ContentStore defines read-side access to seeded topics and cards.
// Content is written by the offline seed loader and treated as
// read-only by the running service.
type ContentStore interface {
	// ListTopics returns every topic across all subjects. The
	// implementation paginates through the underlying index until no
	// more pages remain and filters out rows that are not topic
	// metadata. Grouping and ordering are the caller's concern.
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// ListCards returns the cards for one topic, filtered defensively
	// to card rows (MCQ and other co-located content is skipped).
	// An unknown topic yields an empty slice, not an error.
	ListCards(ctx context.Context, topicID string) ([]domain.Card, error)
}

// ContentWriter is the write side used by the offline seed loader.
// The running service never writes content.
type ContentWriter interface {
	// PutTopic writes one topic metadata row. ordinal fixes the
	// topic's position within its subject on the listing index.
	PutTopic(ctx context.Context, topic *domain.Topic, ordinal int) error

	// PutCard writes one revision card under its topic.
	PutCard(ctx context.Context, topicID string, card *domain.Card) error

	// PutMCQ writes one pre-authored multiple-choice question under its topic.
	PutMCQ(ctx context.Context, topicID string, mcq *domain.MCQ) error
}
