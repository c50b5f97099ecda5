package api

import (
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
)

// Request and response DTOs. Field names match the mobile client's
// wire format exactly.

// BootstrapRequest asks for a user identity, optionally tied to a
// device id so reinstalls resolve to the same user.
type BootstrapRequest struct {
	DeviceID string `json:"deviceId,omitempty"`
}

// BootstrapResponse carries the resolved identity.
type BootstrapResponse struct {
	UID   string `json:"uid"`
	IsNew bool   `json:"isNew"`
}

// TopicCardsResponse lists the cards of one topic.
type TopicCardsResponse struct {
	TopicID string        `json:"topicId"`
	Cards   []domain.Card `json:"cards"`
}

// QuizStartRequest starts a quiz for a user on a topic.
type QuizStartRequest struct {
	UID          string `json:"uid"          validate:"required"`
	TopicID      string `json:"topicId"      validate:"required"`
	NumQuestions int    `json:"numQuestions" validate:"gte=0"`
}

// QuizStartResponse returns the generated quiz. Question correct
// indexes are included for the client's immediate-feedback mode;
// grading never trusts them.
type QuizStartResponse struct {
	QuizID    string            `json:"quizId"`
	TopicID   string            `json:"topicId"`
	Questions []domain.Question `json:"questions"`
}

// QuizSubmitRequest submits answers for grading.
type QuizSubmitRequest struct {
	UID     string          `json:"uid"     validate:"required"`
	QuizID  string          `json:"quizId"  validate:"required"`
	Answers []domain.Answer `json:"answers"`
}

// NextSteps points the client at the cards to revisit.
type NextSteps struct {
	CardIDs []string `json:"cardIds"`
}

// QuizSubmitResponse carries the grading outcome.
type QuizSubmitResponse struct {
	Score     int                    `json:"score"`
	Breakdown []domain.BreakdownItem `json:"breakdown"`
	NextSteps NextSteps              `json:"nextSteps"`
}

// ReviewNextResponse lists the due-for-review groups per topic.
type ReviewNextResponse struct {
	Due []domain.ReviewGroup `json:"due"`
}

// ProgressUpdateRequest records the latest outcome for one exercise.
type ProgressUpdateRequest struct {
	UID        string         `json:"uid"        validate:"required"`
	TopicID    string         `json:"topicId"    validate:"required"`
	ExerciseID string         `json:"exerciseId" validate:"required"`
	Status     string         `json:"status"     validate:"required"`
	Score      *float64       `json:"score,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// ProgressGetResponse lists stored progress records.
type ProgressGetResponse struct {
	Items []domain.ProgressRecord `json:"items"`
}

// HomeworkSubmitResponse carries extraction output, optional AI
// guidance and any degradation warnings.
type HomeworkSubmitResponse struct {
	ExtractedText []string `json:"extractedText"`
	CombinedText  string   `json:"combinedText"`
	AIHelp        string   `json:"aiHelp,omitempty"`
	Files         []string `json:"files"`
	Warnings      []string `json:"warnings"`
}
