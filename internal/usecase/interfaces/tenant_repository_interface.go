package interfaces

import (
	"boarding_house/internal/domain/entities"
	"context"
	"time"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.

type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	ListByRoomID(ctx context.Context, roomID string) ([]entities.Tenant, error)
	MarkLeft(ctx context.Context, id string, endDate time.Time) (entities.Tenant, error)
}
