// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrUserIDEmpty is returned when a user ID is empty.
	ErrUserIDEmpty = errors.New("user ID cannot be empty")

	// ErrTopicIDEmpty is returned when a topic ID is empty.
	ErrTopicIDEmpty = errors.New("topic ID cannot be empty")

	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardFrontEmpty is returned when a card has no front text.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrCardBackEmpty is returned when a card has no back text.
	ErrCardBackEmpty = errors.New("card back cannot be empty")

	// ErrQuizIDEmpty is returned when a quiz ID is empty.
	ErrQuizIDEmpty = errors.New("quiz ID cannot be empty")

	// ErrNoQuestions is returned when a quiz session holds no questions.
	ErrNoQuestions = errors.New("quiz session must contain at least one question")

	// ErrCorrectIndexOutOfRange is returned when a question's correct index
	// does not point into its choice list.
	ErrCorrectIndexOutOfRange = errors.New("correct index out of range")

	// ErrExerciseIDEmpty is returned when a progress record has no exercise ID.
	ErrExerciseIDEmpty = errors.New("exercise ID cannot be empty")

	// ErrStatusEmpty is returned when a progress record has no status.
	ErrStatusEmpty = errors.New("progress status cannot be empty")
)
