package interfaces

import (
	"boarding_house/internal/domain/entities"
	"context"
)

// IPriceConfigRepository abstracts DynamoDB persistence for PriceConfig.
//
// The billing flow only ever reads the active config; Update rewrites the
// prices of an existing config in place.

type IPriceConfigRepository interface {
	Create(ctx context.Context, c entities.PriceConfig) (entities.PriceConfig, error)
	GetActive(ctx context.Context) (entities.PriceConfig, error)
	Update(ctx context.Context, c entities.PriceConfig) (entities.PriceConfig, error)
}
