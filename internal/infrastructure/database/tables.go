package database

import (
	"context"
	"errors"
	"log"
	"time"

	"boarding_house/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableActiveTimeout = 2 * time.Minute

// TableAPI is the subset of *dynamodb.Client needed to bootstrap tables.
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// TableSpec describes a table keyed by "id" with string-keyed GSIs.
type TableSpec struct {
	Name    string
	Indexes map[string]string // index name -> partition key attribute
}

// TableSpecs returns the tables used by the service.
func TableSpecs(tables config.TablesConfig) []TableSpec {
	return []TableSpec{
		{Name: tables.Rooms, Indexes: map[string]string{"name-index": "name"}},
		{Name: tables.Tenants, Indexes: map[string]string{"room_id-index": "room_id"}},
		{Name: tables.PriceConfigs},
		{Name: tables.Invoices, Indexes: map[string]string{
			"access_key-index": "access_key",
			"room_id-index":    "room_id",
			"month-index":      "month",
		}},
	}
}

// EnsureTables creates missing tables and waits until they are active.
// Meant for local DynamoDB; production tables are provisioned outside the
// service.
func EnsureTables(ctx context.Context, api TableAPI, specs []TableSpec) error {
	for _, spec := range specs {
		_, err := api.CreateTable(ctx, createTableInput(spec))
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[database] table exists table=%s", spec.Name)
				continue
			}
			return err
		}

		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, tableActiveTimeout); err != nil {
			return err
		}
		log.Printf("[database] table created table=%s indexes=%d", spec.Name, len(spec.Indexes))
	}
	return nil
}

func createTableInput(spec TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	seen := map[string]bool{"id": true}

	var gsis []types.GlobalSecondaryIndex
	for indexName, key := range spec.Indexes {
		if !seen[key] {
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
			seen[key] = true
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName: aws.String(indexName),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.Name),
		BillingMode:            types.BillingModePayPerRequest,
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
	}
}
