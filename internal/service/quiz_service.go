package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// maxDistractors caps how many wrong choices a generated question
// carries, giving at most four choices in total.
const maxDistractors = 3

// QuizService generates quizzes from topic cards and grades
// submissions against the persisted session.
//
// Per quiz id the lifecycle is: no session, then an active session
// created by StartQuiz, then either a recorded result (SubmitQuiz) or
// silent expiry of an abandoned session. Grading always re-derives
// truth from the persisted session, never from client input.
type QuizService struct {
	users   store.UserStore
	content store.ContentStore
	quizzes store.QuizStore
	sampler Sampler

	sessionTTL       time.Duration
	defaultQuestions int
	logger           *slog.Logger
}

// NewQuizService creates a QuizService with the given stores and quiz
// tunables.
func NewQuizService(
	users store.UserStore,
	content store.ContentStore,
	quizzes store.QuizStore,
	cfg config.QuizConfig,
	logger *slog.Logger,
) *QuizService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizService{
		users:            users,
		content:          content,
		quizzes:          quizzes,
		sampler:          randomSampler{},
		sessionTTL:       cfg.SessionTTL,
		defaultQuestions: cfg.DefaultQuestions,
		logger:           logger.With(slog.String("component", "quiz_service")),
	}
}

// StartQuiz builds a quiz of up to numQuestions questions from the
// topic's cards, persists the session and returns it. When
// numQuestions is not positive the configured default applies; when
// the topic has fewer cards than requested, every card is used.
func (s *QuizService) StartQuiz(ctx context.Context, uid, topicID string, numQuestions int) (*domain.QuizSession, error) {
	if numQuestions <= 0 {
		numQuestions = s.defaultQuestions
	}

	if _, err := s.users.GetProfile(ctx, uid); err != nil {
		return nil, err
	}

	cards, err := s.content.ListCards(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("topic %q: %w", topicID, ErrNoCardsForTopic)
	}

	k := numQuestions
	if k > len(cards) {
		k = len(cards)
	}

	questions := make([]domain.Question, 0, k)
	for _, idx := range s.sampler.Perm(len(cards))[:k] {
		questions = append(questions, s.buildQuestion(cards[idx], cards))
	}

	session, err := domain.NewQuizSession(uid, topicID, questions, s.sessionTTL)
	if err != nil {
		return nil, err
	}
	if err := s.quizzes.PutSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quiz started",
		slog.String("quiz_id", session.QuizID),
		slog.String("topic_id", topicID),
		slog.Int("questions", len(questions)))
	return session, nil
}

// buildQuestion turns one card into a multiple-choice question. The
// stem is the card's front and the correct choice its back; up to
// three distractors are drawn from the other cards' backs, distinct by
// value, then the choice list is shuffled.
func (s *QuizService) buildQuestion(card domain.Card, all []domain.Card) domain.Question {
	seen := map[string]struct{}{card.Back: {}}
	pool := make([]string, 0, len(all))
	for _, other := range all {
		if _, dup := seen[other.Back]; dup {
			continue
		}
		seen[other.Back] = struct{}{}
		pool = append(pool, other.Back)
	}

	n := maxDistractors
	if n > len(pool) {
		n = len(pool)
	}
	choices := make([]string, 0, n+1)
	for _, idx := range s.sampler.Perm(len(pool))[:n] {
		choices = append(choices, pool[idx])
	}
	choices = append(choices, card.Back)

	correct := len(choices) - 1
	s.sampler.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	})

	return domain.Question{
		ID:           card.ID,
		Stem:         card.Front,
		Choices:      choices,
		CorrectIndex: correct,
	}
}

// SubmitQuiz grades the answers against the persisted session, writes
// the durable result and retires the session. Questions the client did
// not answer are omitted from the breakdown, not counted as wrong.
func (s *QuizService) SubmitQuiz(ctx context.Context, uid, quizID string, answers []domain.Answer) (*domain.QuizResult, error) {
	session, err := s.quizzes.GetSession(ctx, uid, quizID)
	if err != nil {
		return nil, err
	}

	score := 0
	breakdown := make([]domain.BreakdownItem, 0, len(answers))
	for _, answer := range answers {
		question, ok := session.QuestionByID(answer.QuestionID)
		if !ok {
			return nil, &UnknownQuestionError{QuestionID: answer.QuestionID}
		}
		correct := answer.ChoiceIndex == question.CorrectIndex
		if correct {
			score++
		}
		breakdown = append(breakdown, domain.BreakdownItem{
			QuestionID:   answer.QuestionID,
			Correct:      correct,
			CorrectIndex: question.CorrectIndex,
		})
	}

	result := &domain.QuizResult{
		QuizID:      session.QuizID,
		UID:         uid,
		TopicID:     session.TopicID,
		Score:       score,
		Breakdown:   breakdown,
		Answers:     answers,
		CompletedAt: time.Now().UTC(),
	}
	if err := s.quizzes.PutResult(ctx, result); err != nil {
		return nil, err
	}

	// The result is durable at this point. An orphaned session cannot
	// be graded again (the result row shadows it on read paths that
	// matter) and ages out via TTL, so deletion failure is non-fatal.
	if err := s.quizzes.DeleteSession(ctx, uid, quizID); err != nil {
		s.logger.WarnContext(ctx, "failed to delete consumed quiz session",
			slog.String("quiz_id", quizID),
			slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "quiz submitted",
		slog.String("quiz_id", quizID),
		slog.Int("score", score),
		slog.Int("answered", len(answers)))
	return result, nil
}
