package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"boarding_house/internal/domain/entities"
	mock_interfaces "boarding_house/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTenantUseCase_AddTenant(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewTenantUseCase(nil, nil)
		_, err := uc.AddTenant(context.Background(), AddTenantInput{FullName: " ", RoomID: "r-1"})
		if !errors.Is(err, ErrInvalidTenantName) {
			t.Fatalf("expected ErrInvalidTenantName, got %v", err)
		}
	})

	t.Run("invalid room id", func(t *testing.T) {
		uc := NewTenantUseCase(nil, nil)
		_, err := uc.AddTenant(context.Background(), AddTenantInput{FullName: "An"})
		if !errors.Is(err, ErrInvalidRoomID) {
			t.Fatalf("expected ErrInvalidRoomID, got %v", err)
		}
	})

	t.Run("room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewTenantUseCase(nil, roomRepo)

		roomRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Room{}, nil)

		_, err := uc.AddTenant(context.Background(), AddTenantInput{FullName: "An", RoomID: "r-1"})
		if !errors.Is(err, ErrRoomNotFound) {
			t.Fatalf("expected ErrRoomNotFound, got %v", err)
		}
	})

	t.Run("moves in and marks room rented", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewTenantUseCase(repo, roomRepo)

		roomRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Room{ID: "r-1", CurrentTenantIDs: []string{"t-0"}}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Tenant{})).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.ID == "" || tn.FullName != "Nguyen Van An" || tn.RoomID != "r-1" || tn.Phone != "0901" {
					t.Fatalf("unexpected tenant: %+v", tn)
				}
				if tn.HasLeft || tn.EndDate != nil {
					t.Fatalf("expected resident tenant, got %+v", tn)
				}
				if tn.StartDate.IsZero() {
					t.Fatalf("expected default start date")
				}
				return tn, nil
			},
		)
		roomRepo.EXPECT().UpdateOccupancy(gomock.Any(), "r-1", entities.RoomStatusRented, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.RoomStatus, ids []string) (entities.Room, error) {
				if len(ids) != 2 || ids[0] != "t-0" {
					t.Fatalf("unexpected tenant ids: %v", ids)
				}
				return entities.Room{ID: "r-1", Status: entities.RoomStatusRented, CurrentTenantIDs: ids}, nil
			},
		)

		res, err := uc.AddTenant(context.Background(), AddTenantInput{FullName: " Nguyen Van An ", Phone: "0901", RoomID: "r-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestTenantUseCase_CheckoutRoom(t *testing.T) {
	t.Run("no residents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewTenantUseCase(repo, roomRepo)

		roomRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Room{ID: "r-1"}, nil)
		repo.EXPECT().ListByRoomID(gomock.Any(), "r-1").Return([]entities.Tenant{{ID: "t-1", RoomID: "r-1", HasLeft: true}}, nil)

		if err := uc.CheckoutRoom(context.Background(), "r-1"); !errors.Is(err, ErrRoomHasNoResidents) {
			t.Fatalf("expected ErrRoomHasNoResidents, got %v", err)
		}
	})

	t.Run("all residents leave and readings stay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewTenantUseCase(repo, roomRepo)

		roomRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Room{
			ID:           "r-1",
			LastReadings: entities.MeterReadings{Electricity: 1250, Water: 80},
		}, nil)
		repo.EXPECT().ListByRoomID(gomock.Any(), "r-1").Return([]entities.Tenant{
			{ID: "t-1", RoomID: "r-1"},
			{ID: "t-2", RoomID: "r-1"},
		}, nil)
		repo.EXPECT().MarkLeft(gomock.Any(), "t-1", gomock.Any()).Return(entities.Tenant{ID: "t-1", HasLeft: true}, nil)
		repo.EXPECT().MarkLeft(gomock.Any(), "t-2", gomock.Any()).Return(entities.Tenant{ID: "t-2", HasLeft: true}, nil)
		roomRepo.EXPECT().UpdateOccupancy(gomock.Any(), "r-1", entities.RoomStatusEmpty, []string{}).Return(entities.Room{ID: "r-1"}, nil)
		roomRepo.EXPECT().UpdateLastReadings(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		if err := uc.CheckoutRoom(context.Background(), "r-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mark left error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
		uc := NewTenantUseCase(repo, roomRepo)

		roomRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Room{ID: "r-1"}, nil)
		repo.EXPECT().ListByRoomID(gomock.Any(), "r-1").Return([]entities.Tenant{{ID: "t-1", RoomID: "r-1"}}, nil)
		repo.EXPECT().MarkLeft(gomock.Any(), "t-1", gomock.Any()).Return(entities.Tenant{}, errors.New("db"))

		if err := uc.CheckoutRoom(context.Background(), "r-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestTenantUseCase_CheckoutTenant(t *testing.T) {
	t.Run("already left", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewTenantUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1", HasLeft: true}, nil)

		if err := uc.CheckoutTenant(context.Background(), "t-1"); !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	cases := []struct {
		name      string
		residents []entities.Tenant
		status    entities.RoomStatus
		remaining int
	}{
		{
			name:      "last resident empties room",
			residents: []entities.Tenant{{ID: "t-1", RoomID: "r-1", HasLeft: true}},
			status:    entities.RoomStatusEmpty,
			remaining: 0,
		},
		{
			name:      "room stays rented",
			residents: []entities.Tenant{{ID: "t-1", RoomID: "r-1", HasLeft: true}, {ID: "t-2", RoomID: "r-1"}},
			status:    entities.RoomStatusRented,
			remaining: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockITenantRepository(ctrl)
			roomRepo := mock_interfaces.NewMockIRoomRepository(ctrl)
			uc := NewTenantUseCase(repo, roomRepo)

			repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tenant{ID: "t-1", RoomID: "r-1"}, nil)
			roomRepo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Room{ID: "r-1"}, nil)
			repo.EXPECT().MarkLeft(gomock.Any(), "t-1", gomock.Any()).Return(entities.Tenant{ID: "t-1", HasLeft: true}, nil)
			repo.EXPECT().ListByRoomID(gomock.Any(), "r-1").Return(tc.residents, nil)
			roomRepo.EXPECT().UpdateOccupancy(gomock.Any(), "r-1", tc.status, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, _ entities.RoomStatus, ids []string) (entities.Room, error) {
					if len(ids) != tc.remaining {
						t.Fatalf("expected %d remaining tenants, got %v", tc.remaining, ids)
					}
					return entities.Room{ID: "r-1"}, nil
				},
			)

			if err := uc.CheckoutTenant(context.Background(), "t-1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTenantUseCase_ListRoomTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITenantRepository(ctrl)
	uc := NewTenantUseCase(repo, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().ListByRoomID(gomock.Any(), "r-1").Return([]entities.Tenant{
		{ID: "t-old", RoomID: "r-1", HasLeft: true, StartDate: start},
		{ID: "t-a", RoomID: "r-1", StartDate: start.AddDate(0, 1, 0)},
		{ID: "t-b", RoomID: "r-1", StartDate: start.AddDate(0, 3, 0)},
	}, nil)

	res, err := uc.ListRoomTenants(context.Background(), "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Current) != 2 || res.Current[0].ID != "t-b" || res.Current[1].ID != "t-a" {
		t.Fatalf("expected residents newest first, got %+v", res.Current)
	}
	if len(res.History) != 1 || res.History[0].ID != "t-old" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
}
