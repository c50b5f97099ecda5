package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/SimonTheDeveloper/GCSE-AI-agent/internal/config"
)

// Client captures the DynamoDB operations the stores use, so unit
// tests can substitute a fake without a running table.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// NewClient creates a DynamoDB client from the default AWS credential
// chain (task role in ECS, env/profile locally). EndpointURL, when
// set, points the client at DynamoDB Local.
func NewClient(ctx context.Context, cfg config.DynamoConfig) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}
	})
	return client, nil
}

// Table bundles the client with the table and index names every store
// needs. One Table value is shared by all store implementations.
type Table struct {
	client   Client
	name     string
	gsi1Name string
}

// NewTable creates a Table handle for the configured single table.
func NewTable(client Client, cfg config.DynamoConfig) *Table {
	return &Table{
		client:   client,
		name:     cfg.TableName,
		gsi1Name: cfg.GSI1Name,
	}
}
