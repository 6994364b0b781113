package response

import (
	"boarding_house/internal/domain/entities"
	"time"
)

type ServiceFeeResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type PriceConfigResponse struct {
	ID               string               `json:"id"`
	ElectricityPrice float64              `json:"electricity_price"`
	WaterPrice       float64              `json:"water_price"`
	ServiceFees      []ServiceFeeResponse `json:"service_fees"`
	Active           bool                 `json:"active"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func FromServiceFees(fees []entities.ServiceFee) []ServiceFeeResponse {
	out := make([]ServiceFeeResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, ServiceFeeResponse{Name: f.Name, Price: f.Price})
	}
	return out
}

func FromPriceConfig(c entities.PriceConfig) PriceConfigResponse {
	return PriceConfigResponse{
		ID:               c.ID,
		ElectricityPrice: c.ElectricityPrice,
		WaterPrice:       c.WaterPrice,
		ServiceFees:      FromServiceFees(c.ServiceFees),
		Active:           c.Active,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
