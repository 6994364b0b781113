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
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrInvalidTenantID     = errors.New("invalid tenant id")
	ErrInvalidTenantName   = errors.New("invalid tenant full name")
	ErrRoomHasNoResidents  = errors.New("room has no resident tenants")
	ErrTenantRoomNotExists = errors.New("tenant room not found")
)

// AddTenantInput carries the data of a new tenant moving into a room.
type AddTenantInput struct {
	FullName  string
	Phone     string
	IDNumber  string
	Hometown  string
	RoomID    string
	StartDate time.Time
}

// RoomTenants splits the tenants of a room between residents and former
// tenants, newest first.
type RoomTenants struct {
	Current []entities.Tenant
	History []entities.Tenant
}

// ITenantUseCase exposes tenant move-in and checkout operations.
//
// Checkout never touches Room.LastReadings: the next tenant is billed from
// the physical meter value left by the previous one.

type ITenantUseCase interface {
	AddTenant(ctx context.Context, in AddTenantInput) (entities.Tenant, error)
	CheckoutRoom(ctx context.Context, roomID string) error
	CheckoutTenant(ctx context.Context, tenantID string) error
	ListRoomTenants(ctx context.Context, roomID string) (RoomTenants, error)
}

type TenantUseCase struct {
	repo     interfaces.ITenantRepository
	roomRepo interfaces.IRoomRepository
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(repo interfaces.ITenantRepository, roomRepo interfaces.IRoomRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo, roomRepo: roomRepo}
}

func (u *TenantUseCase) AddTenant(ctx context.Context, in AddTenantInput) (entities.Tenant, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return entities.Tenant{}, ErrInvalidTenantName
	}
	roomID := strings.TrimSpace(in.RoomID)
	if roomID == "" {
		return entities.Tenant{}, ErrInvalidRoomID
	}

	room, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return entities.Tenant{}, err
	}
	if room.ID == "" {
		return entities.Tenant{}, ErrRoomNotFound
	}

	now := time.Now().UTC()
	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = now
	}
	t := entities.Tenant{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Phone:     strings.TrimSpace(in.Phone),
		IDNumber:  strings.TrimSpace(in.IDNumber),
		Hometown:  strings.TrimSpace(in.Hometown),
		RoomID:    room.ID,
		StartDate: startDate.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[tenant][usecase] create failed room_id=%s err=%v", room.ID, err)
		return entities.Tenant{}, err
	}

	tenantIDs := append(append([]string{}, room.CurrentTenantIDs...), created.ID)
	if _, err := u.roomRepo.UpdateOccupancy(ctx, room.ID, entities.RoomStatusRented, tenantIDs); err != nil {
		log.Printf("[tenant][usecase] room occupancy update failed room_id=%s tenant_id=%s err=%v", room.ID, created.ID, err)
		return entities.Tenant{}, err
	}
	log.Printf("[tenant][usecase] moved in tenant_id=%s room_id=%s residents=%d", created.ID, room.ID, len(tenantIDs))
	return created, nil
}

func (u *TenantUseCase) CheckoutRoom(ctx context.Context, roomID string) error {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return ErrInvalidRoomID
	}

	room, err := u.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room.ID == "" {
		return ErrRoomNotFound
	}

	tenants, err := u.repo.ListByRoomID(ctx, room.ID)
	if err != nil {
		return err
	}
	residents := residentTenants(tenants, room.ID)
	if len(residents) == 0 {
		return ErrRoomHasNoResidents
	}

	now := time.Now().UTC()
	for _, t := range residents {
		if _, err := u.repo.MarkLeft(ctx, t.ID, now); err != nil {
			log.Printf("[tenant][usecase] checkout failed room_id=%s tenant_id=%s err=%v", room.ID, t.ID, err)
			return err
		}
	}

	if _, err := u.roomRepo.UpdateOccupancy(ctx, room.ID, entities.RoomStatusEmpty, []string{}); err != nil {
		return err
	}
	log.Printf("[tenant][usecase] room checked out room_id=%s tenants=%d", room.ID, len(residents))
	return nil
}

func (u *TenantUseCase) CheckoutTenant(ctx context.Context, tenantID string) error {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return ErrInvalidTenantID
	}

	t, err := u.repo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if t.ID == "" || t.HasLeft {
		return ErrTenantNotFound
	}

	room, err := u.roomRepo.GetByID(ctx, t.RoomID)
	if err != nil {
		return err
	}
	if room.ID == "" {
		return ErrTenantRoomNotExists
	}

	if _, err := u.repo.MarkLeft(ctx, t.ID, time.Now().UTC()); err != nil {
		return err
	}

	tenants, err := u.repo.ListByRoomID(ctx, room.ID)
	if err != nil {
		return err
	}
	remaining := make([]string, 0, len(tenants))
	for _, other := range residentTenants(tenants, room.ID) {
		if other.ID != t.ID {
			remaining = append(remaining, other.ID)
		}
	}

	status := entities.RoomStatusRented
	if len(remaining) == 0 {
		status = entities.RoomStatusEmpty
	}
	if _, err := u.roomRepo.UpdateOccupancy(ctx, room.ID, status, remaining); err != nil {
		return err
	}
	log.Printf("[tenant][usecase] tenant checked out tenant_id=%s room_id=%s remaining=%d", t.ID, room.ID, len(remaining))
	return nil
}

func (u *TenantUseCase) ListRoomTenants(ctx context.Context, roomID string) (RoomTenants, error) {
	roomID = strings.TrimSpace(roomID)
	if roomID == "" {
		return RoomTenants{}, ErrInvalidRoomID
	}

	tenants, err := u.repo.ListByRoomID(ctx, roomID)
	if err != nil {
		return RoomTenants{}, err
	}
	sort.SliceStable(tenants, func(i, j int) bool { return tenants[i].StartDate.After(tenants[j].StartDate) })

	out := RoomTenants{Current: []entities.Tenant{}, History: []entities.Tenant{}}
	for _, t := range tenants {
		if t.HasLeft {
			out.History = append(out.History, t)
		} else {
			out.Current = append(out.Current, t)
		}
	}
	return out, nil
}
