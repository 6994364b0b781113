package entities

import "time"

// Tenant is a person living (or having lived) in a room.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (room_id-index): room_id
type Tenant struct {
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

// IsResident reports whether the tenant currently lives in roomID.
func (t Tenant) IsResident(roomID string) bool {
	return t.ID != "" && !t.HasLeft && t.RoomID == roomID
}
