package domain

import "time"

// ProgressRecord tracks a user's latest outcome for one exercise in a
// topic. Exactly one record exists per (user, topic, exercise); writes
// replace the previous record and UpdatedAt is always server-assigned.
type ProgressRecord struct {
	TopicID    string         `json:"topicId"`
	ExerciseID string         `json:"exerciseId"`
	Status     string         `json:"status"`
	Score      *float64       `json:"score,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Validate checks that the ProgressRecord has valid data.
func (p *ProgressRecord) Validate() error {
	if p.TopicID == "" {
		return ErrTopicIDEmpty
	}
	if p.ExerciseID == "" {
		return ErrExerciseIDEmpty
	}
	if p.Status == "" {
		return ErrStatusEmpty
	}
	return nil
}

// ReviewGroup is one topic's set of cards due for review, derived from
// recent wrong answers. CardIDs is sorted for deterministic output.
type ReviewGroup struct {
	TopicID string   `json:"topicId"`
	CardIDs []string `json:"cardIds"`
}
