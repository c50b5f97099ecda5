package store

import (
	"context"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
)

// QuizStore defines persistence for quiz sessions and results.
//
// A session exists only between start and submit. Writing a result and
// deleting the session are two separate single-key writes with no
// transaction across them: a crash in between leaves an orphaned
// session, which is harmless (it can no longer be graded once the
// result exists under the same quiz ID, and it ages out via TTL).
type QuizStore interface {
	// PutSession persists a newly generated quiz session, including
	// each question's choices and correct index exactly as shown to
	// the client.
	PutSession(ctx context.Context, session *domain.QuizSession) error

	// GetSession loads the session for (uid, quizID).
	// Returns ErrSessionNotFound if absent or already consumed.
	GetSession(ctx context.Context, uid, quizID string) (*domain.QuizSession, error)

	// DeleteSession removes a session after grading. Deleting an
	// already-absent session is not an error.
	DeleteSession(ctx context.Context, uid, quizID string) error

	// PutResult persists the durable quiz result.
	PutResult(ctx context.Context, result *domain.QuizResult) error

	// ListRecentResults returns up to limit of the user's most
	// recently completed quiz results, newest first by the store's
	// natural key ordering.
	ListRecentResults(ctx context.Context, uid string, limit int) ([]domain.QuizResult, error)
}
