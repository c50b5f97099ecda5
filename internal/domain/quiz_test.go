package domain_test

import (
	"testing"
	"time"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestions() []domain.Question {
	return []domain.Question{
		{ID: "c1", Stem: "2+2", Choices: []string{"3", "4", "5"}, CorrectIndex: 1},
		{ID: "c2", Stem: "3+3", Choices: []string{"6"}, CorrectIndex: 0},
	}
}

func TestNewQuizSession(t *testing.T) {
	s, err := domain.NewQuizSession("user-1", "algebra-1", validQuestions(), time.Hour)
	require.NoError(t, err)

	assert.NotEmpty(t, s.QuizID)
	assert.Equal(t, "user-1", s.UID)
	assert.Equal(t, "algebra-1", s.TopicID)
	assert.Len(t, s.Questions, 2)
	assert.True(t, s.ExpiresAt.After(s.CreatedAt))
}

func TestQuizSessionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.QuizSession)
		wantErr error
	}{
		{
			name:    "valid session",
			mutate:  func(s *domain.QuizSession) {},
			wantErr: nil,
		},
		{
			name:    "missing uid",
			mutate:  func(s *domain.QuizSession) { s.UID = "" },
			wantErr: domain.ErrUserIDEmpty,
		},
		{
			name:    "missing topic",
			mutate:  func(s *domain.QuizSession) { s.TopicID = "" },
			wantErr: domain.ErrTopicIDEmpty,
		},
		{
			name:    "no questions",
			mutate:  func(s *domain.QuizSession) { s.Questions = nil },
			wantErr: domain.ErrNoQuestions,
		},
		{
			name: "correct index past choices",
			mutate: func(s *domain.QuizSession) {
				s.Questions[0].CorrectIndex = len(s.Questions[0].Choices)
			},
			wantErr: domain.ErrCorrectIndexOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := domain.NewQuizSession("user-1", "algebra-1", validQuestions(), time.Hour)
			require.NoError(t, err)

			tt.mutate(s)
			err = s.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestQuestionByID(t *testing.T) {
	s, err := domain.NewQuizSession("user-1", "algebra-1", validQuestions(), time.Hour)
	require.NoError(t, err)

	q, ok := s.QuestionByID("c2")
	require.True(t, ok)
	assert.Equal(t, "3+3", q.Stem)

	_, ok = s.QuestionByID("missing")
	assert.False(t, ok)
}

func TestQuizResultWrongCardIDs(t *testing.T) {
	r := domain.QuizResult{
		Breakdown: []domain.BreakdownItem{
			{QuestionID: "c1", Correct: true},
			{QuestionID: "c2", Correct: false},
			{QuestionID: "c3", Correct: false},
		},
	}

	assert.Equal(t, []string{"c2", "c3"}, r.WrongCardIDs())
}
