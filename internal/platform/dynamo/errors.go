package dynamo

import (
	"fmt"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// infraError wraps a DynamoDB SDK failure so callers can match it with
// errors.Is(err, store.ErrInternal) while the original error stays
// available for logging.
func infraError(entity, operation string, err error) error {
	return store.NewStoreError(entity, operation, fmt.Errorf("%w: %w", store.ErrInternal, err))
}
