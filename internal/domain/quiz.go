package domain

import (
	"time"

	"github.com/google/uuid"
)

// Question is one generated multiple-choice question. The ID is the
// ID of the card the question was built from, the stem is the card's
// front and CorrectIndex points at the card's back within Choices.
type Question struct {
	ID           string   `json:"id"`
	Stem         string   `json:"stem"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correctIndex"`
}

// QuizSession is the transient record of a started quiz. The choices
// and correct index persisted here are immutable for the session's
// lifetime: grading must use exactly these questions, never a
// regenerated set.
type QuizSession struct {
	QuizID    string     `json:"quizId"`
	UID       string     `json:"uid"`
	TopicID   string     `json:"topicId"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// NewQuizSession creates a QuizSession with a fresh quiz ID.
// ttl bounds how long an abandoned session may linger before the
// store's TTL mechanism removes it.
func NewQuizSession(uid, topicID string, questions []Question, ttl time.Duration) (*QuizSession, error) {
	now := time.Now().UTC()
	s := &QuizSession{
		QuizID:    uuid.NewString(),
		UID:       uid,
		TopicID:   topicID,
		Questions: questions,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the QuizSession has valid data.
func (s *QuizSession) Validate() error {
	if s.QuizID == "" {
		return ErrQuizIDEmpty
	}
	if s.UID == "" {
		return ErrUserIDEmpty
	}
	if s.TopicID == "" {
		return ErrTopicIDEmpty
	}
	if len(s.Questions) == 0 {
		return ErrNoQuestions
	}
	for _, q := range s.Questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return ErrCorrectIndexOutOfRange
		}
	}
	return nil
}

// QuestionByID returns the session question with the given ID, or
// false when the ID is not part of this session.
func (s *QuizSession) QuestionByID(id string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Answer is a client's answer to one session question.
type Answer struct {
	QuestionID  string `json:"questionId"`
	ChoiceIndex int    `json:"choiceIndex"`
}

// BreakdownItem records the grading outcome for one answered question.
type BreakdownItem struct {
	QuestionID   string `json:"questionId"`
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correctIndex"`
	Explanation  string `json:"explanation,omitempty"`
}

// QuizResult is the durable record written when a quiz is submitted.
// Once a result exists for a quiz ID the corresponding session is
// deleted; questions left unanswered do not appear in Breakdown.
type QuizResult struct {
	QuizID      string          `json:"quizId"`
	UID         string          `json:"uid"`
	TopicID     string          `json:"topicId"`
	Score       int             `json:"score"`
	Breakdown   []BreakdownItem `json:"breakdown"`
	Answers     []Answer        `json:"answers"`
	CompletedAt time.Time       `json:"completedAt"`
}

// WrongCardIDs returns the IDs of the questions graded incorrect.
func (r *QuizResult) WrongCardIDs() []string {
	ids := make([]string, 0, len(r.Breakdown))
	for _, b := range r.Breakdown {
		if !b.Correct {
			ids = append(ids, b.QuestionID)
		}
	}
	return ids
}
