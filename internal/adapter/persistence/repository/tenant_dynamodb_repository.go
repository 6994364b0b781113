package repository

import (
	"context"
	"time"

	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultTenantsTableName = "tenants"
	TenantsRoomIDIndex      = "room_id-index"
)

type tenantItem struct {
	ID        string `dynamodbav:"id"`
	FullName  string `dynamodbav:"full_name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	IDNumber  string `dynamodbav:"id_number,omitempty"`
	Hometown  string `dynamodbav:"hometown,omitempty"`
	RoomID    string `dynamodbav:"room_id"`
	StartDate string `dynamodbav:"start_date"`
	EndDate   string `dynamodbav:"end_date,omitempty"`
	HasLeft   bool   `dynamodbav:"has_left"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TenantDynamoRepository persists Tenant entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: room_id-index (PK: room_id)
//
// Former tenants are kept with has_left=true so the room history survives
// checkouts.

type TenantDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITenantRepository = (*TenantDynamoRepository)(nil)

func NewTenantDynamoRepository(ddb DynamoAPI, tableName string) *TenantDynamoRepository {
	if tableName == "" {
		tableName = DefaultTenantsTableName
	}
	return &TenantDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TenantDynamoRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	av, err := attributevalue.MarshalMap(toTenantItem(t))
	if err != nil {
		return entities.Tenant{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Tenant{}, err
	}
	return t, nil
}

func (r *TenantDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	return unmarshalTenant(raw)
}

func (r *TenantDynamoRepository) ListByRoomID(ctx context.Context, roomID string) ([]entities.Tenant, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, TenantsRoomIDIndex, "room_id", roomID)
	if err != nil {
		return nil, err
	}

	tenants := make([]entities.Tenant, 0, len(items))
	for _, raw := range items {
		t, err := unmarshalTenant(raw)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, nil
}

func (r *TenantDynamoRepository) MarkLeft(ctx context.Context, id string, endDate time.Time) (entities.Tenant, error) {
	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #has_left = :has_left, #end_date = :end_date, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":has_left":   &types.AttributeValueMemberBOOL{Value: true},
			":end_date":   &types.AttributeValueMemberS{Value: formatTime(endDate)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#has_left":   "has_left",
			"#end_date":   "end_date",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Tenant{}, err
	}
	return unmarshalTenant(attrs)
}

func unmarshalTenant(raw map[string]types.AttributeValue) (entities.Tenant, error) {
	if len(raw) == 0 {
		return entities.Tenant{}, nil
	}
	var it tenantItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantItem(it), nil
}

func toTenantItem(t entities.Tenant) tenantItem {
	it := tenantItem{
		ID:        t.ID,
		FullName:  t.FullName,
		Phone:     t.Phone,
		IDNumber:  t.IDNumber,
		Hometown:  t.Hometown,
		RoomID:    t.RoomID,
		StartDate: formatTime(t.StartDate),
		HasLeft:   t.HasLeft,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
	if t.EndDate != nil {
		it.EndDate = formatTime(*t.EndDate)
	}
	return it
}

func fromTenantItem(it tenantItem) entities.Tenant {
	t := entities.Tenant{
		ID:        it.ID,
		FullName:  it.FullName,
		Phone:     it.Phone,
		IDNumber:  it.IDNumber,
		Hometown:  it.Hometown,
		RoomID:    it.RoomID,
		StartDate: parseTime(it.StartDate),
		HasLeft:   it.HasLeft,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.EndDate != "" {
		end := parseTime(it.EndDate)
		t.EndDate = &end
	}
	return t
}
