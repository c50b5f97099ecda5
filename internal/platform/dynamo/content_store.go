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
var (
	_ store.ContentStore  = (*ContentStore)(nil)
	_ store.ContentWriter = (*ContentStore)(nil)
)

// ContentStore implements store.ContentStore and store.ContentWriter
// on the single table. Reads go through GSI1; rows of unexpected Type
// sharing an index partition are skipped rather than surfaced.
type ContentStore struct {
	table  *Table
	logger *slog.Logger
}

// NewContentStore creates a ContentStore backed by the given table.
func NewContentStore(table *Table, logger *slog.Logger) *ContentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentStore{
		table:  table,
		logger: logger.With(slog.String("component", "content_store")),
	}
}

// ListTopics implements store.ContentStore.ListTopics.
func (s *ContentStore) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	items, err := s.table.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table.name),
		IndexName:              aws.String(s.table.gsi1Name),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: TopicListGSI1PK},
		},
	})
	if err != nil {
		return nil, infraError("topic", "query", err)
	}

	topics := make([]domain.Topic, 0, len(items))
	for _, raw := range items {
		var it topicItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, infraError("topic", "unmarshal", err)
		}
		if it.Type != TypeTopicMeta {
			continue
		}
		topics = append(topics, it.toDomain())
	}
	return topics, nil
}

// ListCards implements store.ContentStore.ListCards.
func (s *ContentStore) ListCards(ctx context.Context, topicID string) ([]domain.Card, error) {
	items, err := s.table.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table.name),
		IndexName:              aws.String(s.table.gsi1Name),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND begins_with(GSI1SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: TopicGSI1PK(topicID)},
			":prefix": &types.AttributeValueMemberS{Value: CardSKPrefix},
		},
	})
	if err != nil {
		return nil, infraError("card", "query", err)
	}

	cards := make([]domain.Card, 0, len(items))
	for _, raw := range items {
		var it cardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, infraError("card", "unmarshal", err)
		}
		if it.Type != TypeRevCard {
			continue
		}
		cards = append(cards, it.toDomain())
	}
	return cards, nil
}

// PutTopic implements store.ContentWriter.PutTopic.
func (s *ContentStore) PutTopic(ctx context.Context, topic *domain.Topic, ordinal int) error {
	if err := topic.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	return s.putItem(ctx, "topic", newTopicItem(topic, ordinal))
}

// PutCard implements store.ContentWriter.PutCard.
func (s *ContentStore) PutCard(ctx context.Context, topicID string, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	return s.putItem(ctx, "card", newCardItem(topicID, card))
}

// PutMCQ implements store.ContentWriter.PutMCQ.
func (s *ContentStore) PutMCQ(ctx context.Context, topicID string, mcq *domain.MCQ) error {
	return s.putItem(ctx, "mcq", newMCQItem(topicID, mcq))
}

func (s *ContentStore) putItem(ctx context.Context, entity string, v any) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return infraError(entity, "marshal", err)
	}
	_, err = s.table.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table.name),
		Item:      item,
	})
	if err != nil {
		return infraError(entity, "put", err)
	}
	return nil
}
