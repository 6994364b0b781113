package interfaces

import (
	"boarding_house/internal/domain/entities"
	"context"
	"time"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Invoices are written once; the only update is the payment status.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByAccessKey(ctx context.Context, accessKey string) (entities.Invoice, error)
	ListByRoomID(ctx context.Context, roomID string) ([]entities.Invoice, error)
	ListByMonth(ctx context.Context, month string) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus, paymentDate time.Time) (entities.Invoice, error)
}
