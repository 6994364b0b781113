package response

import (
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase"
	"time"
)

type TenantResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Phone     string     `json:"phone"`
	IDNumber  string     `json:"id_number"`
	Hometown  string     `json:"hometown"`
	RoomID    string     `json:"room_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	HasLeft   bool       `json:"has_left"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type RoomTenantsResponse struct {
	Current []TenantResponse `json:"current"`
	History []TenantResponse `json:"history"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		FullName:  t.FullName,
		Phone:     t.Phone,
		IDNumber:  t.IDNumber,
		Hometown:  t.Hometown,
		RoomID:    t.RoomID,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		HasLeft:   t.HasLeft,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTenants(list []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTenant(t))
	}
	return out
}

func FromRoomTenants(rt usecase.RoomTenants) RoomTenantsResponse {
	return RoomTenantsResponse{
		Current: FromTenants(rt.Current),
		History: FromTenants(rt.History),
	}
}
