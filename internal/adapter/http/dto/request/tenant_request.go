package request

import (
	"errors"
	"strings"
	"time"

	"boarding_house/internal/usecase"
)

var ErrInvalidStartDate = errors.New("invalid start_date")

type TenantRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"id_number"`
	Hometown  string `json:"hometown"`
	RoomID    string `json:"room_id" binding:"required"`
	StartDate string `json:"start_date"`
}

// ResolveStartDate accepts RFC3339 or a plain "2006-01-02" date. An empty
// value returns the zero time, meaning "now".
func (r TenantRequest) ResolveStartDate() (time.Time, error) {
	v := strings.TrimSpace(r.StartDate)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidStartDate
}

func (r TenantRequest) ToInput() (usecase.AddTenantInput, error) {
	start, err := r.ResolveStartDate()
	if err != nil {
		return usecase.AddTenantInput{}, err
	}
	return usecase.AddTenantInput{
		FullName:  r.FullName,
		Phone:     r.Phone,
		IDNumber:  r.IDNumber,
		Hometown:  r.Hometown,
		RoomID:    r.RoomID,
		StartDate: start,
	}, nil
}
