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
	DefaultInvoicesTableName = "invoices"
	InvoicesAccessKeyIndex   = "access_key-index"
	InvoicesRoomIDIndex      = "room_id-index"
	InvoicesMonthIndex       = "month-index"
)

type utilityChargeItem struct {
	Old           string `dynamodbav:"old"`
	New           string `dynamodbav:"new"`
	Usage         string `dynamodbav:"usage"`
	PriceSnapshot string `dynamodbav:"price_snapshot"`
	Total         string `dynamodbav:"total"`
}

type invoiceItem struct {
	ID                string            `dynamodbav:"id"`
	RoomID            string            `dynamodbav:"room_id"`
	TenantID          string            `dynamodbav:"tenant_id,omitempty"`
	Month             string            `dynamodbav:"month"`
	Electricity       utilityChargeItem `dynamodbav:"electricity"`
	Water             utilityChargeItem `dynamodbav:"water"`
	Services          []serviceFeeItem  `dynamodbav:"services"`
	RoomPriceSnapshot string            `dynamodbav:"room_price_snapshot"`
	AdditionalFees    string            `dynamodbav:"additional_fees"`
	TotalAmount       string            `dynamodbav:"total_amount"`
	Status            string            `dynamodbav:"status"`
	PaymentDate       string            `dynamodbav:"payment_date,omitempty"`
	AccessKey         string            `dynamodbav:"access_key"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: access_key-index (PK: access_key)
//   - GSI: room_id-index (PK: room_id)
//   - GSI: month-index (PK: month)

type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName string) *InvoiceDynamoRepository {
	if tableName == "" {
		tableName = DefaultInvoicesTableName
	}
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	return unmarshalInvoice(raw)
}

func (r *InvoiceDynamoRepository) GetByAccessKey(ctx context.Context, accessKey string) (entities.Invoice, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, InvoicesAccessKeyIndex, "access_key", accessKey)
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(items) == 0 {
		return entities.Invoice{}, nil
	}
	return unmarshalInvoice(items[0])
}

func (r *InvoiceDynamoRepository) ListByRoomID(ctx context.Context, roomID string) ([]entities.Invoice, error) {
	return r.list(ctx, InvoicesRoomIDIndex, "room_id", roomID)
}

func (r *InvoiceDynamoRepository) ListByMonth(ctx context.Context, month string) ([]entities.Invoice, error) {
	return r.list(ctx, InvoicesMonthIndex, "month", month)
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus, paymentDate time.Time) (entities.Invoice, error) {
	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #payment_date = :payment_date, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":       &types.AttributeValueMemberS{Value: string(status)},
			":payment_date": &types.AttributeValueMemberS{Value: formatTime(paymentDate)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":       "status",
			"#payment_date": "payment_date",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return unmarshalInvoice(attrs)
}

func (r *InvoiceDynamoRepository) list(ctx context.Context, indexName, keyAttr, value string) ([]entities.Invoice, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, indexName, keyAttr, value)
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(items))
	for _, raw := range items {
		inv, err := unmarshalInvoice(raw)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func unmarshalInvoice(raw map[string]types.AttributeValue) (entities.Invoice, error) {
	if len(raw) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toUtilityChargeItem(c entities.UtilityCharge) utilityChargeItem {
	return utilityChargeItem{
		Old:           floatToString(c.Old),
		New:           floatToString(c.New),
		Usage:         floatToString(c.Usage),
		PriceSnapshot: floatToString(c.PriceSnapshot),
		Total:         floatToString(c.Total),
	}
}

func fromUtilityChargeItem(it utilityChargeItem) entities.UtilityCharge {
	return entities.UtilityCharge{
		Old:           parseFloat(it.Old),
		New:           parseFloat(it.New),
		Usage:         parseFloat(it.Usage),
		PriceSnapshot: parseFloat(it.PriceSnapshot),
		Total:         parseFloat(it.Total),
	}
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:                inv.ID,
		RoomID:            inv.RoomID,
		TenantID:          inv.TenantID,
		Month:             inv.Month,
		Electricity:       toUtilityChargeItem(inv.Electricity),
		Water:             toUtilityChargeItem(inv.Water),
		Services:          toServiceFeeItems(inv.Services),
		RoomPriceSnapshot: floatToString(inv.RoomPriceSnapshot),
		AdditionalFees:    floatToString(inv.AdditionalFees),
		TotalAmount:       floatToString(inv.TotalAmount),
		Status:            string(inv.Status),
		AccessKey:         inv.AccessKey,
		CreatedAt:         formatTime(inv.CreatedAt),
		UpdatedAt:         formatTime(inv.UpdatedAt),
	}
	if inv.PaymentDate != nil {
		it.PaymentDate = formatTime(*inv.PaymentDate)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:                it.ID,
		RoomID:            it.RoomID,
		TenantID:          it.TenantID,
		Month:             it.Month,
		Electricity:       fromUtilityChargeItem(it.Electricity),
		Water:             fromUtilityChargeItem(it.Water),
		Services:          fromServiceFeeItems(it.Services),
		RoomPriceSnapshot: parseFloat(it.RoomPriceSnapshot),
		AdditionalFees:    parseFloat(it.AdditionalFees),
		TotalAmount:       parseFloat(it.TotalAmount),
		Status:            entities.InvoiceStatus(it.Status),
		AccessKey:         it.AccessKey,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.PaymentDate != "" {
		paid := parseTime(it.PaymentDate)
		inv.PaymentDate = &paid
	}
	return inv
}
