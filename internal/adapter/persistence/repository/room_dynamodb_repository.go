package repository

import (
	"context"
	"strconv"

	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultRoomsTableName = "rooms"
	RoomsNameIndex        = "name-index"
)

type meterReadingsItem struct {
	Electricity string `dynamodbav:"electricity"`
	Water       string `dynamodbav:"water"`
}

type roomItem struct {
	ID               string            `dynamodbav:"id"`
	Name             string            `dynamodbav:"name"`
	BasePrice        string            `dynamodbav:"base_price"`
	Floor            int               `dynamodbav:"floor"`
	Status           string            `dynamodbav:"status"`
	CurrentTenantIDs []string          `dynamodbav:"current_tenant_ids"`
	LastReadings     meterReadingsItem `dynamodbav:"last_readings"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// RoomDynamoRepository persists Room entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: name-index (PK: name)
//
// Name uniqueness is checked by the use case through the name-index before
// writing; DynamoDB only guards the primary key.

type RoomDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRoomRepository = (*RoomDynamoRepository)(nil)

func NewRoomDynamoRepository(ddb DynamoAPI, tableName string) *RoomDynamoRepository {
	if tableName == "" {
		tableName = DefaultRoomsTableName
	}
	return &RoomDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RoomDynamoRepository) Create(ctx context.Context, room entities.Room) (entities.Room, error) {
	av, err := attributevalue.MarshalMap(toRoomItem(room))
	if err != nil {
		return entities.Room{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Room{}, err
	}
	return room, nil
}

func (r *RoomDynamoRepository) GetByID(ctx context.Context, id string) (entities.Room, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Room{}, err
	}
	return unmarshalRoom(raw)
}

func (r *RoomDynamoRepository) GetByName(ctx context.Context, name string) (entities.Room, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, RoomsNameIndex, "name", name)
	if err != nil {
		return entities.Room{}, err
	}
	if len(items) == 0 {
		return entities.Room{}, nil
	}
	return unmarshalRoom(items[0])
}

func (r *RoomDynamoRepository) List(ctx context.Context) ([]entities.Room, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	rooms := make([]entities.Room, 0, len(items))
	for _, raw := range items {
		room, err := unmarshalRoom(raw)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *RoomDynamoRepository) UpdateDetails(ctx context.Context, id string, name string, basePrice float64, floor int) (entities.Room, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #base_price = :base_price, #floor = :floor, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: name},
			":base_price": &types.AttributeValueMemberS{Value: floatToString(basePrice)},
			":floor":      &types.AttributeValueMemberN{Value: strconv.Itoa(floor)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":       "name",
			"#base_price": "base_price",
			"#floor":      "floor",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RoomDynamoRepository) UpdateOccupancy(ctx context.Context, id string, status entities.RoomStatus, tenantIDs []string) (entities.Room, error) {
	if tenantIDs == nil {
		tenantIDs = []string{}
	}
	ids, err := attributevalue.Marshal(tenantIDs)
	if err != nil {
		return entities.Room{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #current_tenant_ids = :ids, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":ids":        ids,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":             "status",
			"#current_tenant_ids": "current_tenant_ids",
			"#updated_at":         "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RoomDynamoRepository) UpdateLastReadings(ctx context.Context, id string, readings entities.MeterReadings) (entities.Room, error) {
	av, err := attributevalue.Marshal(toMeterReadingsItem(readings))
	if err != nil {
		return entities.Room{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #last_readings = :readings, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":readings":   av,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#last_readings": "last_readings",
			"#updated_at":    "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RoomDynamoRepository) update(ctx context.Context, id string, build updateBuilder) (entities.Room, error) {
	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, build)
	if err != nil {
		return entities.Room{}, err
	}
	return unmarshalRoom(attrs)
}

func unmarshalRoom(raw map[string]types.AttributeValue) (entities.Room, error) {
	if len(raw) == 0 {
		return entities.Room{}, nil
	}
	var it roomItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Room{}, err
	}
	return fromRoomItem(it), nil
}

func toMeterReadingsItem(m entities.MeterReadings) meterReadingsItem {
	return meterReadingsItem{
		Electricity: floatToString(m.Electricity),
		Water:       floatToString(m.Water),
	}
}

func toRoomItem(r entities.Room) roomItem {
	ids := r.CurrentTenantIDs
	if ids == nil {
		ids = []string{}
	}
	return roomItem{
		ID:               r.ID,
		Name:             r.Name,
		BasePrice:        floatToString(r.BasePrice),
		Floor:            r.Floor,
		Status:           string(r.Status),
		CurrentTenantIDs: ids,
		LastReadings:     toMeterReadingsItem(r.LastReadings),
		CreatedAt:        formatTime(r.CreatedAt),
		UpdatedAt:        formatTime(r.UpdatedAt),
	}
}

func fromRoomItem(it roomItem) entities.Room {
	ids := it.CurrentTenantIDs
	if ids == nil {
		ids = []string{}
	}
	return entities.Room{
		ID:               it.ID,
		Name:             it.Name,
		BasePrice:        parseFloat(it.BasePrice),
		Floor:            it.Floor,
		Status:           entities.RoomStatus(it.Status),
		CurrentTenantIDs: ids,
		LastReadings: entities.MeterReadings{
			Electricity: parseFloat(it.LastReadings.Electricity),
			Water:       parseFloat(it.LastReadings.Water),
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
