// Package store defines the persistence interfaces used by the
// service layer, together with the shared error taxonomy. All
// entities live in one logical key-value table; the DynamoDB
// implementation is in internal/platform/dynamo.
package store
