package response

import (
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase"
	"time"
)

type UtilityChargeResponse struct {
	Old           float64 `json:"old"`
	New           float64 `json:"new"`
	Usage         float64 `json:"usage"`
	PriceSnapshot float64 `json:"price_snapshot"`
	Total         float64 `json:"total"`
}

type InvoiceResponse struct {
	ID                string                `json:"id"`
	RoomID            string                `json:"room_id"`
	TenantID          string                `json:"tenant_id"`
	Month             string                `json:"month"`
	Electricity       UtilityChargeResponse `json:"electricity"`
	Water             UtilityChargeResponse `json:"water"`
	Services          []ServiceFeeResponse  `json:"services"`
	RoomPriceSnapshot float64               `json:"room_price_snapshot"`
	AdditionalFees    float64               `json:"additional_fees"`
	TotalAmount       float64               `json:"total_amount"`
	Status            string                `json:"status"`
	PaymentDate       *time.Time            `json:"payment_date,omitempty"`
	AccessKey         string                `json:"access_key"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// InvoiceDetailsResponse is an invoice with the names shown on the bill.
type InvoiceDetailsResponse struct {
	InvoiceResponse
	RoomName    string `json:"room_name"`
	TenantName  string `json:"tenant_name"`
	TenantPhone string `json:"tenant_phone,omitempty"`
}

type InvoiceSummaryLineResponse struct {
	ID          string  `json:"id"`
	Month       string  `json:"month"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
	AccessKey   string  `json:"access_key"`
}

type RoomPaymentSummaryResponse struct {
	RoomID       string                       `json:"room_id"`
	RoomName     string                       `json:"room_name"`
	BasePrice    float64                      `json:"base_price"`
	TenantName   string                       `json:"tenant_name"`
	TotalAmount  float64                      `json:"total_amount"`
	PaidAmount   float64                      `json:"paid_amount"`
	UnpaidAmount float64                      `json:"unpaid_amount"`
	IsPaid       bool                         `json:"is_paid"`
	Invoices     []InvoiceSummaryLineResponse `json:"invoices"`
}

func fromUtilityCharge(c entities.UtilityCharge) UtilityChargeResponse {
	return UtilityChargeResponse{
		Old:           c.Old,
		New:           c.New,
		Usage:         c.Usage,
		PriceSnapshot: c.PriceSnapshot,
		Total:         c.Total,
	}
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                inv.ID,
		RoomID:            inv.RoomID,
		TenantID:          inv.TenantID,
		Month:             inv.Month,
		Electricity:       fromUtilityCharge(inv.Electricity),
		Water:             fromUtilityCharge(inv.Water),
		Services:          FromServiceFees(inv.Services),
		RoomPriceSnapshot: inv.RoomPriceSnapshot,
		AdditionalFees:    inv.AdditionalFees,
		TotalAmount:       inv.TotalAmount,
		Status:            string(inv.Status),
		PaymentDate:       inv.PaymentDate,
		AccessKey:         inv.AccessKey,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}

func FromInvoiceDetails(d usecase.InvoiceDetails) InvoiceDetailsResponse {
	return InvoiceDetailsResponse{
		InvoiceResponse: FromInvoice(d.Invoice),
		RoomName:        d.RoomName,
		TenantName:      d.TenantName,
		TenantPhone:     d.TenantPhone,
	}
}

func FromInvoiceDetailsList(list []usecase.InvoiceDetails) []InvoiceDetailsResponse {
	out := make([]InvoiceDetailsResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromInvoiceDetails(d))
	}
	return out
}

func FromRoomPaymentSummaries(list []usecase.RoomPaymentSummary) []RoomPaymentSummaryResponse {
	out := make([]RoomPaymentSummaryResponse, 0, len(list))
	for _, s := range list {
		lines := make([]InvoiceSummaryLineResponse, 0, len(s.Invoices))
		for _, l := range s.Invoices {
			lines = append(lines, InvoiceSummaryLineResponse{
				ID:          l.ID,
				Month:       l.Month,
				Status:      string(l.Status),
				TotalAmount: l.TotalAmount,
				AccessKey:   l.AccessKey,
			})
		}
		out = append(out, RoomPaymentSummaryResponse{
			RoomID:       s.RoomID,
			RoomName:     s.RoomName,
			BasePrice:    s.BasePrice,
			TenantName:   s.TenantName,
			TotalAmount:  s.TotalAmount,
			PaidAmount:   s.PaidAmount,
			UnpaidAmount: s.UnpaidAmount,
			IsPaid:       s.IsPaid,
			Invoices:     lines,
		})
	}
	return out
}
