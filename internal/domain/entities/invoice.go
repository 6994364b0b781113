package entities

import "time"

// InvoiceStatus represents the payment state of an invoice.

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
)

// UtilityCharge is the per-utility breakdown frozen on an invoice.
type UtilityCharge struct {
	Old           float64 `json:"old"`
	New           float64 `json:"new"`
	Usage         float64 `json:"usage"`
	PriceSnapshot float64 `json:"price_snapshot"`
	Total         float64 `json:"total"`
}

// Invoice is the monthly bill of a room.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (access_key-index): access_key
//   - GSI2 (room_id-index): room_id
//   - GSI3 (month-index): month
//
// Monetary fields are a snapshot taken at creation time. Only Status and
// PaymentDate change afterwards.
type Invoice struct {
	ID                string        `json:"id"`
	RoomID            string        `json:"room_id"`
	TenantID          string        `json:"tenant_id"`
	Month             string        `json:"month"`
	Electricity       UtilityCharge `json:"electricity"`
	Water             UtilityCharge `json:"water"`
	Services          []ServiceFee  `json:"services"`
	RoomPriceSnapshot float64       `json:"room_price_snapshot"`
	AdditionalFees    float64       `json:"additional_fees"`
	TotalAmount       float64       `json:"total_amount"`
	Status            InvoiceStatus `json:"status"`
	PaymentDate       *time.Time    `json:"payment_date,omitempty"`
	AccessKey         string        `json:"access_key"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
