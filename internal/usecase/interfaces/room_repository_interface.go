package interfaces

import (
	"boarding_house/internal/domain/entities"
	"context"
)

// IRoomRepository abstracts DynamoDB persistence for Room.
//
// Lookups return a zero-value Room (empty ID) when nothing matches.

type IRoomRepository interface {
	Create(ctx context.Context, r entities.Room) (entities.Room, error)
	GetByID(ctx context.Context, id string) (entities.Room, error)
	GetByName(ctx context.Context, name string) (entities.Room, error)
	List(ctx context.Context) ([]entities.Room, error)
	UpdateDetails(ctx context.Context, id string, name string, basePrice float64, floor int) (entities.Room, error)
	UpdateOccupancy(ctx context.Context, id string, status entities.RoomStatus, tenantIDs []string) (entities.Room, error)
	UpdateLastReadings(ctx context.Context, id string, readings entities.MeterReadings) (entities.Room, error)
}
