package request

import "boarding_house/internal/usecase"

// InvoiceRequest is the monthly meter reading of a room.
//
// Readings are pointers so a zero reading (new meter) is still accepted.
// AdditionalFees is a surcharge when positive and a discount when negative.
type InvoiceRequest struct {
	RoomID         string   `json:"room_id" binding:"required"`
	TenantID       string   `json:"tenant_id"`
	Month          string   `json:"month" binding:"required"`
	NewElectricity *float64 `json:"new_electricity" binding:"required"`
	NewWater       *float64 `json:"new_water" binding:"required"`
	AdditionalFees float64  `json:"additional_fees"`
}

func (r InvoiceRequest) ToInput() usecase.CreateInvoiceInput {
	in := usecase.CreateInvoiceInput{
		RoomID:         r.RoomID,
		TenantID:       r.TenantID,
		Month:          r.Month,
		AdditionalFees: r.AdditionalFees,
	}
	if r.NewElectricity != nil {
		in.NewElectricity = *r.NewElectricity
	}
	if r.NewWater != nil {
		in.NewWater = *r.NewWater
	}
	return in
}
