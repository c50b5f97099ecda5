package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// defaultRecentResults bounds how many completed quizzes feed the
// review aggregation.
const defaultRecentResults = 10

// ReviewService tracks per-exercise progress and derives "due for
// review" card groups from the user's recent wrong answers. There is
// no decay, spacing or weighting: a card is due if it was answered
// incorrectly in one of the user's last N quizzes.
type ReviewService struct {
	users    store.UserStore
	quizzes  store.QuizStore
	progress store.ProgressStore
	logger   *slog.Logger
}

// NewReviewService creates a ReviewService with the given stores.
func NewReviewService(
	users store.UserStore,
	quizzes store.QuizStore,
	progress store.ProgressStore,
	logger *slog.Logger,
) *ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		users:    users,
		quizzes:  quizzes,
		progress: progress,
		logger:   logger.With(slog.String("component", "review_service")),
	}
}

// SaveProgress overwrites the user's record for the record's
// (topicID, exerciseID). The timestamp is assigned here, never trusted
// from input. Returns the stored record.
func (s *ReviewService) SaveProgress(ctx context.Context, uid string, record *domain.ProgressRecord) (*domain.ProgressRecord, error) {
	record.UpdatedAt = time.Now().UTC()
	if err := s.progress.Put(ctx, uid, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetProgress returns the user's progress records, filtered to one
// topic when topicID is non-empty.
func (s *ReviewService) GetProgress(ctx context.Context, uid, topicID string) ([]domain.ProgressRecord, error) {
	return s.progress.List(ctx, uid, topicID)
}

// ReviewNext returns the user's due-for-review card groups, one per
// topic with recent mistakes. Card ids and groups are sorted for
// deterministic output; an empty result means nothing is due.
// Returns store.ErrUserNotFound for an unknown user.
func (s *ReviewService) ReviewNext(ctx context.Context, uid string) ([]domain.ReviewGroup, error) {
	if _, err := s.users.GetProfile(ctx, uid); err != nil {
		return nil, err
	}

	wrong, err := s.recentWrongCards(ctx, uid, defaultRecentResults)
	if err != nil {
		return nil, err
	}

	groups := make([]domain.ReviewGroup, 0, len(wrong))
	for topicID, cardSet := range wrong {
		cardIDs := make([]string, 0, len(cardSet))
		for id := range cardSet {
			cardIDs = append(cardIDs, id)
		}
		slices.Sort(cardIDs)
		groups = append(groups, domain.ReviewGroup{TopicID: topicID, CardIDs: cardIDs})
	}
	slices.SortFunc(groups, func(a, b domain.ReviewGroup) int {
		return strings.Compare(a.TopicID, b.TopicID)
	})
	return groups, nil
}

// recentWrongCards folds the incorrect breakdown entries of the user's
// most recent quiz results into a per-topic set of card ids.
func (s *ReviewService) recentWrongCards(ctx context.Context, uid string, limit int) (map[string]map[string]struct{}, error) {
	results, err := s.quizzes.ListRecentResults(ctx, uid, limit)
	if err != nil {
		return nil, err
	}

	wrong := make(map[string]map[string]struct{})
	for _, result := range results {
		for _, id := range result.WrongCardIDs() {
			if wrong[result.TopicID] == nil {
				wrong[result.TopicID] = make(map[string]struct{})
			}
			wrong[result.TopicID][id] = struct{}{}
		}
	}
	return wrong, nil
}
