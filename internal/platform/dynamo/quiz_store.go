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
var _ store.QuizStore = (*QuizStore)(nil)

// QuizStore implements store.QuizStore on the single table.
//
// Sessions carry an expiresAt attribute registered as the table's TTL
// field, so abandoned sessions age out without a sweep job. Result
// writes and session deletes are separate single-key operations; see
// store.QuizStore for the documented orphan window.
type QuizStore struct {
	table  *Table
	logger *slog.Logger
}

// NewQuizStore creates a QuizStore backed by the given table.
func NewQuizStore(table *Table, logger *slog.Logger) *QuizStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizStore{
		table:  table,
		logger: logger.With(slog.String("component", "quiz_store")),
	}
}

// PutSession implements store.QuizStore.PutSession.
func (s *QuizStore) PutSession(ctx context.Context, session *domain.QuizSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	item, err := attributevalue.MarshalMap(newSessionItem(session))
	if err != nil {
		return infraError("quiz session", "marshal", err)
	}

	_, err = s.table.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table.name),
		Item:      item,
	})
	if err != nil {
		return infraError("quiz session", "put", err)
	}
	return nil
}

// GetSession implements store.QuizStore.GetSession.
func (s *QuizStore) GetSession(ctx context.Context, uid, quizID string) (*domain.QuizSession, error) {
	out, err := s.table.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table.name),
		Key:       primaryKey(UserPK(uid), QuizSessionSK(quizID)),
	})
	if err != nil {
		return nil, infraError("quiz session", "get", err)
	}
	if len(out.Item) == 0 {
		return nil, store.ErrSessionNotFound
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, infraError("quiz session", "unmarshal", err)
	}
	return it.toDomain(), nil
}

// DeleteSession implements store.QuizStore.DeleteSession.
func (s *QuizStore) DeleteSession(ctx context.Context, uid, quizID string) error {
	_, err := s.table.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table.name),
		Key:       primaryKey(UserPK(uid), QuizSessionSK(quizID)),
	})
	if err != nil {
		return infraError("quiz session", "delete", err)
	}
	return nil
}

// PutResult implements store.QuizStore.PutResult.
func (s *QuizStore) PutResult(ctx context.Context, result *domain.QuizResult) error {
	item, err := attributevalue.MarshalMap(newResultItem(result))
	if err != nil {
		return infraError("quiz result", "marshal", err)
	}

	_, err = s.table.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table.name),
		Item:      item,
	})
	if err != nil {
		return infraError("quiz result", "put", err)
	}
	return nil
}

// ListRecentResults implements store.QuizStore.ListRecentResults.
//
// The query walks the user's QUIZ#-prefixed rows newest first. Session
// rows share the prefix and count against the page limit, mirroring
// how the table is keyed; they are filtered out by Type below.
func (s *QuizStore) ListRecentResults(ctx context.Context, uid string, limit int) ([]domain.QuizResult, error) {
	out, err := s.table.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table.name),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: UserPK(uid)},
			":prefix": &types.AttributeValueMemberS{Value: QuizSKPrefix},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, infraError("quiz result", "query", err)
	}

	results := make([]domain.QuizResult, 0, len(out.Items))
	for _, raw := range out.Items {
		var it resultItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, infraError("quiz result", "unmarshal", err)
		}
		if it.Type != TypeQuizResult {
			continue
		}
		results = append(results, it.toDomain())
	}
	return results, nil
}
