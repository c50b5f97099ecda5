package dynamo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// Verify interface compliance at compile time
var _ store.ProgressStore = (*ProgressStore)(nil)

// ProgressStore implements store.ProgressStore on the single table.
// The (topicID, exerciseID) pair is encoded in the sort key, so a put
// naturally replaces the previous record for the same exercise.
type ProgressStore struct {
	table  *Table
	logger *slog.Logger
}

// NewProgressStore creates a ProgressStore backed by the given table.
func NewProgressStore(table *Table, logger *slog.Logger) *ProgressStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressStore{
		table:  table,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// Put implements store.ProgressStore.Put.
func (s *ProgressStore) Put(ctx context.Context, uid string, record *domain.ProgressRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	item, err := attributevalue.MarshalMap(newProgressItem(uid, record))
	if err != nil {
		return infraError("progress", "marshal", err)
	}

	_, err = s.table.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table.name),
		Item:      item,
	})
	if err != nil {
		return infraError("progress", "put", err)
	}
	return nil
}

// List implements store.ProgressStore.List.
func (s *ProgressStore) List(ctx context.Context, uid, topicID string) ([]domain.ProgressRecord, error) {
	prefix := ProgressSKPrefix
	if topicID != "" {
		prefix = ProgressTopicSKPrefix(topicID)
	}

	items, err := s.table.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table.name),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: UserPK(uid)},
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return nil, infraError("progress", "query", err)
	}

	records := make([]domain.ProgressRecord, 0, len(items))
	for _, raw := range items {
		var it progressItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, infraError("progress", "unmarshal", err)
		}
		if it.Type != TypeProgress {
			continue
		}
		records = append(records, it.toDomain())
	}
	return records, nil
}
