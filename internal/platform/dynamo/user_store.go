package dynamo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/domain"
	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/store"
)

// Verify interface compliance at compile time
var _ store.UserStore = (*UserStore)(nil)

// UserStore implements store.UserStore on the single table.
type UserStore struct {
	table  *Table
	logger *slog.Logger
}

// NewUserStore creates a UserStore backed by the given table.
func NewUserStore(table *Table, logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		table:  table,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// CreateProfile implements store.UserStore.CreateProfile.
func (s *UserStore) CreateProfile(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	item, err := attributevalue.MarshalMap(newUserItem(user))
	if err != nil {
		return infraError("user", "marshal", err)
	}

	_, err = s.table.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table.name),
		Item:      item,
	})
	if err != nil {
		return infraError("user", "put", err)
	}
	return nil
}

// GetProfile implements store.UserStore.GetProfile.
func (s *UserStore) GetProfile(ctx context.Context, uid string) (*domain.User, error) {
	out, err := s.table.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table.name),
		Key:       primaryKey(UserPK(uid), ProfileSK),
	})
	if err != nil {
		return nil, infraError("user", "get", err)
	}
	if len(out.Item) == 0 {
		return nil, store.ErrUserNotFound
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, infraError("user", "unmarshal", err)
	}
	return it.toDomain(), nil
}

// PutDeviceLink implements store.UserStore.PutDeviceLink.
func (s *UserStore) PutDeviceLink(ctx context.Context, link *domain.DeviceLink) error {
	item, err := attributevalue.MarshalMap(newDeviceLinkItem(link))
	if err != nil {
		return infraError("device link", "marshal", err)
	}

	_, err = s.table.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table.name),
		Item:      item,
	})
	if err != nil {
		return infraError("device link", "put", err)
	}
	return nil
}

// GetDeviceLink implements store.UserStore.GetDeviceLink.
func (s *UserStore) GetDeviceLink(ctx context.Context, deviceID string) (*domain.DeviceLink, error) {
	out, err := s.table.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table.name),
		Key:       primaryKey(DevicePK(deviceID), UserLinkSK),
	})
	if err != nil {
		return nil, infraError("device link", "get", err)
	}
	if len(out.Item) == 0 {
		return nil, store.ErrDeviceLinkNotFound
	}

	var it deviceLinkItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, infraError("device link", "unmarshal", err)
	}
	return it.toDomain(), nil
}
