package request

// RoomRequest is the payload for creating or updating a room.
//
// BasePrice is a pointer so a zero price is accepted while a missing one is
// rejected by binding.
type RoomRequest struct {
	Name      string   `json:"name" binding:"required"`
	BasePrice *float64 `json:"base_price" binding:"required"`
	Floor     int      `json:"floor"`
}

func (r RoomRequest) ResolveBasePrice() float64 {
	if r.BasePrice == nil {
		return 0
	}
	return *r.BasePrice
}
