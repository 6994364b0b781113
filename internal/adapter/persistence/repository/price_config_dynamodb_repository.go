package repository

import (
	"context"

	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultPriceConfigsTableName = "price_configs"

type serviceFeeItem struct {
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type priceConfigItem struct {
	ID               string           `dynamodbav:"id"`
	ElectricityPrice string           `dynamodbav:"electricity_price"`
	WaterPrice       string           `dynamodbav:"water_price"`
	ServiceFees      []serviceFeeItem `dynamodbav:"service_fees"`
	IsActive         bool             `dynamodbav:"is_active"`
	CreatedAt        string           `dynamodbav:"created_at"`
	UpdatedAt        string           `dynamodbav:"updated_at"`
}

// PriceConfigDynamoRepository persists PriceConfig entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table holds a handful of rows, so the active config is resolved with a
// consistent filtered Scan instead of a dedicated index.

type PriceConfigDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPriceConfigRepository = (*PriceConfigDynamoRepository)(nil)

func NewPriceConfigDynamoRepository(ddb DynamoAPI, tableName string) *PriceConfigDynamoRepository {
	if tableName == "" {
		tableName = DefaultPriceConfigsTableName
	}
	return &PriceConfigDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PriceConfigDynamoRepository) Create(ctx context.Context, c entities.PriceConfig) (entities.PriceConfig, error) {
	av, err := attributevalue.MarshalMap(toPriceConfigItem(c))
	if err != nil {
		return entities.PriceConfig{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.PriceConfig{}, err
	}
	return c, nil
}

// GetActive returns the active config, or a zero value when none is set.
// If several rows are flagged active the most recently updated one wins.
func (r *PriceConfigDynamoRepository) GetActive(ctx context.Context) (entities.PriceConfig, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		ConsistentRead:   aws.Bool(true),
		FilterExpression: aws.String("#is_active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#is_active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.PriceConfig{}, err
	}

	var active entities.PriceConfig
	for _, raw := range items {
		var it priceConfigItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.PriceConfig{}, err
		}
		c := fromPriceConfigItem(it)
		if active.ID == "" || c.UpdatedAt.After(active.UpdatedAt) {
			active = c
		}
	}
	return active, nil
}

func (r *PriceConfigDynamoRepository) Update(ctx context.Context, c entities.PriceConfig) (entities.PriceConfig, error) {
	fees, err := attributevalue.Marshal(toServiceFeeItems(c.ServiceFees))
	if err != nil {
		return entities.PriceConfig{}, err
	}

	attrs, err := updateByID(ctx, r.ddb, r.tableName, c.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #electricity_price = :electricity_price, #water_price = :water_price, #service_fees = :service_fees, #is_active = :is_active, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":electricity_price": &types.AttributeValueMemberS{Value: floatToString(c.ElectricityPrice)},
			":water_price":       &types.AttributeValueMemberS{Value: floatToString(c.WaterPrice)},
			":service_fees":      fees,
			":is_active":         &types.AttributeValueMemberBOOL{Value: c.Active},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#electricity_price": "electricity_price",
			"#water_price":       "water_price",
			"#service_fees":      "service_fees",
			"#is_active":         "is_active",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.PriceConfig{}, err
	}
	if len(attrs) == 0 {
		return entities.PriceConfig{}, nil
	}

	var it priceConfigItem
	if err := attributevalue.UnmarshalMap(attrs, &it); err != nil {
		return entities.PriceConfig{}, err
	}
	return fromPriceConfigItem(it), nil
}

func toServiceFeeItems(fees []entities.ServiceFee) []serviceFeeItem {
	out := make([]serviceFeeItem, 0, len(fees))
	for _, f := range fees {
		out = append(out, serviceFeeItem{Name: f.Name, Price: floatToString(f.Price)})
	}
	return out
}

func fromServiceFeeItems(items []serviceFeeItem) []entities.ServiceFee {
	out := make([]entities.ServiceFee, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ServiceFee{Name: it.Name, Price: parseFloat(it.Price)})
	}
	return out
}

func toPriceConfigItem(c entities.PriceConfig) priceConfigItem {
	return priceConfigItem{
		ID:               c.ID,
		ElectricityPrice: floatToString(c.ElectricityPrice),
		WaterPrice:       floatToString(c.WaterPrice),
		ServiceFees:      toServiceFeeItems(c.ServiceFees),
		IsActive:         c.Active,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromPriceConfigItem(it priceConfigItem) entities.PriceConfig {
	return entities.PriceConfig{
		ID:               it.ID,
		ElectricityPrice: parseFloat(it.ElectricityPrice),
		WaterPrice:       parseFloat(it.WaterPrice),
		ServiceFees:      fromServiceFeeItems(it.ServiceFees),
		Active:           it.IsActive,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
