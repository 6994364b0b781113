package repository

import (
	"context"
	"testing"
	"time"

	"boarding_house/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func mustMarshalConfig(t *testing.T, c entities.PriceConfig) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toPriceConfigItem(c))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestPriceConfigDynamoRepository_GetActive(t *testing.T) {
	t.Run("none configured", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewPriceConfigDynamoRepository(ddb, "")

		c, err := repo.GetActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "" {
			t.Fatalf("expected zero config, got %+v", c)
		}
		if aws.ToString(ddb.scanIns[0].TableName) != DefaultPriceConfigsTableName {
			t.Fatalf("unexpected table %s", aws.ToString(ddb.scanIns[0].TableName))
		}
		if aws.ToString(ddb.scanIns[0].FilterExpression) != "#is_active = :active" {
			t.Fatalf("unexpected filter %s", aws.ToString(ddb.scanIns[0].FilterExpression))
		}
	})

	t.Run("latest active wins", func(t *testing.T) {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		older := entities.PriceConfig{ID: "c-1", ElectricityPrice: 3000, Active: true, UpdatedAt: base}
		newer := entities.PriceConfig{
			ID:               "c-2",
			ElectricityPrice: 3500,
			WaterPrice:       15000,
			ServiceFees:      []entities.ServiceFee{{Name: "Wifi", Price: 100000}},
			Active:           true,
			UpdatedAt:        base.AddDate(0, 1, 0),
		}
		ddb := &fakeDynamo{scanOuts: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{
			mustMarshalConfig(t, newer),
			mustMarshalConfig(t, older),
		}}}}
		repo := NewPriceConfigDynamoRepository(ddb, "price_configs")

		c, err := repo.GetActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "c-2" || c.WaterPrice != 15000 || len(c.ServiceFees) != 1 || c.ServiceFees[0].Price != 100000 {
			t.Fatalf("unexpected config: %+v", c)
		}
	})
}

func TestPriceConfigDynamoRepository_Update(t *testing.T) {
	cfg := entities.PriceConfig{ID: "c-1", ElectricityPrice: 4000, WaterPrice: 16000, Active: true}
	ddb := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: mustMarshalConfig(t, cfg)}}
	repo := NewPriceConfigDynamoRepository(ddb, "price_configs")

	got, err := repo.Update(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ElectricityPrice != 4000 {
		t.Fatalf("unexpected config: %+v", got)
	}
	fees, ok := ddb.updateIn.ExpressionAttributeValues[":service_fees"].(*types.AttributeValueMemberL)
	if !ok || len(fees.Value) != 0 {
		t.Fatalf("expected empty service list, got %#v", ddb.updateIn.ExpressionAttributeValues[":service_fees"])
	}
}
