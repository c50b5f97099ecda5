package store

import (
	"context"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
)

// ProgressStore defines persistence for per-exercise progress records.
type ProgressStore interface {
	// Put idempotently replaces the record for the record's
	// (topicID, exerciseID) under the given user. Latest write wins;
	// no history is kept.
	Put(ctx context.Context, uid string, record *domain.ProgressRecord) error

	// List returns the user's progress records, filtered to one topic
	// when topicID is non-empty. No ordering guarantee beyond store
	// return order.
	List(ctx context.Context, uid, topicID string) ([]domain.ProgressRecord, error)
}
