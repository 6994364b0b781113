package usecase

import (
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room name already exists")
	ErrInvalidRoomID     = errors.New("invalid room id")
	ErrInvalidRoomName   = errors.New("invalid room name")
	ErrInvalidRoomPrice  = errors.New("invalid room base price")
)

const defaultRoomFloor = 1

// RoomDetails is a room together with the tenants living in it.
//
// UnpaidInvoice is only filled by ListRooms, for rented rooms with an
// outstanding bill.
type RoomDetails struct {
	Room           entities.Room
	CurrentTenants []entities.Tenant
	UnpaidInvoice  *entities.Invoice
}

// IRoomUseCase exposes room management operations.

type IRoomUseCase interface {
	CreateRoom(ctx context.Context, name string, basePrice float64, floor int) (entities.Room, error)
	ListRooms(ctx context.Context) ([]RoomDetails, error)
	GetRoom(ctx context.Context, id string) (RoomDetails, error)
	UpdateRoom(ctx context.Context, id string, name string, basePrice float64, floor int) (entities.Room, error)
}

type RoomUseCase struct {
	repo        interfaces.IRoomRepository
	tenantRepo  interfaces.ITenantRepository
	invoiceRepo interfaces.IInvoiceRepository
}

var _ IRoomUseCase = (*RoomUseCase)(nil)

func NewRoomUseCase(repo interfaces.IRoomRepository, tenantRepo interfaces.ITenantRepository, invoiceRepo interfaces.IInvoiceRepository) *RoomUseCase {
	return &RoomUseCase{repo: repo, tenantRepo: tenantRepo, invoiceRepo: invoiceRepo}
}

func (u *RoomUseCase) CreateRoom(ctx context.Context, name string, basePrice float64, floor int) (entities.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Room{}, ErrInvalidRoomName
	}
	if basePrice < 0 {
		return entities.Room{}, ErrInvalidRoomPrice
	}
	if floor <= 0 {
		floor = defaultRoomFloor
	}

	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Room{}, err
	} else if existing.ID != "" {
		log.Printf("[room][usecase] duplicated name name=%q existing_id=%s", name, existing.ID)
		return entities.Room{}, ErrRoomAlreadyExists
	}

	now := time.Now().UTC()
	r := entities.Room{
		ID:               uuid.NewString(),
		Name:             name,
		BasePrice:        basePrice,
		Floor:            floor,
		Status:           entities.RoomStatusEmpty,
		CurrentTenantIDs: []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[room][usecase] create failed name=%q err=%v", name, err)
		return entities.Room{}, err
	}
	log.Printf("[room][usecase] created room_id=%s name=%q base_price=%.2f", created.ID, created.Name, created.BasePrice)
	return created, nil
}

func (u *RoomUseCase) ListRooms(ctx context.Context) ([]RoomDetails, error) {
	rooms, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })

	out := make([]RoomDetails, 0, len(rooms))
	for _, r := range rooms {
		residents, err := u.residents(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		if len(residents) == 0 && r.Status != entities.RoomStatusEmpty {
			r.Status = entities.RoomStatusEmpty
		}

		details := RoomDetails{Room: r, CurrentTenants: residents}
		if r.Status == entities.RoomStatusRented {
			unpaid, err := u.latestUnpaidInvoice(ctx, r.ID)
			if err != nil {
				return nil, err
			}
			details.UnpaidInvoice = unpaid
		}
		out = append(out, details)
	}
	return out, nil
}

func (u *RoomUseCase) GetRoom(ctx context.Context, id string) (RoomDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RoomDetails{}, ErrInvalidRoomID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return RoomDetails{}, err
	}
	if r.ID == "" {
		return RoomDetails{}, ErrRoomNotFound
	}

	residents, err := u.residents(ctx, r.ID)
	if err != nil {
		return RoomDetails{}, err
	}
	return RoomDetails{Room: r, CurrentTenants: residents}, nil
}

func (u *RoomUseCase) UpdateRoom(ctx context.Context, id string, name string, basePrice float64, floor int) (entities.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Room{}, ErrInvalidRoomID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Room{}, ErrInvalidRoomName
	}
	if basePrice < 0 {
		return entities.Room{}, ErrInvalidRoomPrice
	}
	if floor <= 0 {
		floor = defaultRoomFloor
	}

	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Room{}, err
	} else if existing.ID != "" && existing.ID != id {
		return entities.Room{}, ErrRoomAlreadyExists
	}

	updated, err := u.repo.UpdateDetails(ctx, id, name, basePrice, floor)
	if err != nil {
		return entities.Room{}, err
	}
	if updated.ID == "" {
		return entities.Room{}, ErrRoomNotFound
	}
	log.Printf("[room][usecase] updated room_id=%s name=%q base_price=%.2f floor=%d", updated.ID, updated.Name, updated.BasePrice, updated.Floor)
	return updated, nil
}

func (u *RoomUseCase) residents(ctx context.Context, roomID string) ([]entities.Tenant, error) {
	tenants, err := u.tenantRepo.ListByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return residentTenants(tenants, roomID), nil
}

func (u *RoomUseCase) latestUnpaidInvoice(ctx context.Context, roomID string) (*entities.Invoice, error) {
	invoices, err := u.invoiceRepo.ListByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	var latest *entities.Invoice
	for i := range invoices {
		inv := invoices[i]
		if inv.Status != entities.InvoiceStatusUnpaid {
			continue
		}
		if latest == nil || inv.CreatedAt.After(latest.CreatedAt) {
			latest = &inv
		}
	}
	return latest, nil
}

// residentTenants keeps the tenants still living in roomID, in the order
// they moved in.
func residentTenants(tenants []entities.Tenant, roomID string) []entities.Tenant {
	out := make([]entities.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if t.IsResident(roomID) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out
}
