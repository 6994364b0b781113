package entities

import "time"

// RoomStatus represents the occupancy state of a room.

type RoomStatus string

const (
	RoomStatusEmpty  RoomStatus = "EMPTY"
	RoomStatusRented RoomStatus = "RENTED"
	RoomStatusOwe    RoomStatus = "OWE"
)

// MeterReadings holds the physical electricity and water meter values.
type MeterReadings struct {
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
}

// Room is a rentable unit of the boarding house.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name
//
// LastReadings are the meter values of the latest invoice. They are carried
// forward between tenants and never reset on checkout, so an incoming tenant
// is billed from the real meter value.
type Room struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	BasePrice        float64       `json:"base_price"`
	Floor            int           `json:"floor"`
	Status           RoomStatus    `json:"status"`
	CurrentTenantIDs []string      `json:"current_tenant_ids"`
	LastReadings     MeterReadings `json:"last_readings"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
