package service

import (
	"errors"
	"fmt"
)

// ErrNoCardsForTopic is returned by quiz generation when the requested
// topic has no cards to build questions from.
var ErrNoCardsForTopic = errors.New("topic has no cards")

// UnknownQuestionError is returned when a quiz submission references a
// question id that is not part of the persisted session. The offending
// id is carried so the caller can name it; submissions are rejected as
// a whole rather than silently skipping the unknown entry.
type UnknownQuestionError struct {
	QuestionID string
}

// Error implements the error interface for UnknownQuestionError.
func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question id %q in submission", e.QuestionID)
}
