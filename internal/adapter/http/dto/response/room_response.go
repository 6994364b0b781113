package response

import (
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase"
	"time"
)

type MeterReadingsResponse struct {
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
}

type RoomResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	BasePrice        float64               `json:"base_price"`
	Floor            int                   `json:"floor"`
	Status           string                `json:"status"`
	CurrentTenantIDs []string              `json:"current_tenant_ids"`
	LastReadings     MeterReadingsResponse `json:"last_readings"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// RoomDetailsResponse is a room with its residents. UnpaidInvoice is only
// present in the room list, for rented rooms with an outstanding bill.
type RoomDetailsResponse struct {
	RoomResponse
	CurrentTenants []TenantResponse `json:"current_tenants"`
	UnpaidInvoice  *InvoiceResponse `json:"unpaid_invoice,omitempty"`
}

func FromRoom(r entities.Room) RoomResponse {
	ids := r.CurrentTenantIDs
	if ids == nil {
		ids = []string{}
	}
	return RoomResponse{
		ID:               r.ID,
		Name:             r.Name,
		BasePrice:        r.BasePrice,
		Floor:            r.Floor,
		Status:           string(r.Status),
		CurrentTenantIDs: ids,
		LastReadings: MeterReadingsResponse{
			Electricity: r.LastReadings.Electricity,
			Water:       r.LastReadings.Water,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromRoomDetails(d usecase.RoomDetails) RoomDetailsResponse {
	res := RoomDetailsResponse{
		RoomResponse:   FromRoom(d.Room),
		CurrentTenants: FromTenants(d.CurrentTenants),
	}
	if d.UnpaidInvoice != nil {
		inv := FromInvoice(*d.UnpaidInvoice)
		res.UnpaidInvoice = &inv
	}
	return res
}

func FromRoomDetailsList(list []usecase.RoomDetails) []RoomDetailsResponse {
	out := make([]RoomDetailsResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromRoomDetails(d))
	}
	return out
}
