package domain_test

import (
	"testing"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProgressRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  domain.ProgressRecord
		wantErr error
	}{
		{
			name:   "valid",
			record: domain.ProgressRecord{TopicID: "algebra-1", ExerciseID: "ex1", Status: "completed"},
		},
		{
			name:    "missing topic",
			record:  domain.ProgressRecord{ExerciseID: "ex1", Status: "completed"},
			wantErr: domain.ErrTopicIDEmpty,
		},
		{
			name:    "missing exercise",
			record:  domain.ProgressRecord{TopicID: "algebra-1", Status: "completed"},
			wantErr: domain.ErrExerciseIDEmpty,
		},
		{
			name:    "missing status",
			record:  domain.ProgressRecord{TopicID: "algebra-1", ExerciseID: "ex1"},
			wantErr: domain.ErrStatusEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
