// Package dynamo implements the store interfaces on a single DynamoDB
// table keyed by (PK, SK) with one global secondary index (GSI1).
// Every row carries a Type discriminator; all key string conventions
// live in keys.go so the composite-key schema exists in exactly one
// place. Index attributes are denormalized at write time alongside the
// primary key, never fixed up after the fact.
package dynamo
