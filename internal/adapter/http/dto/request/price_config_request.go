package request

import (
	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase"
)

type ServiceFeeRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type PriceConfigRequest struct {
	ElectricityPrice *float64            `json:"electricity_price" binding:"required"`
	WaterPrice       *float64            `json:"water_price" binding:"required"`
	ServiceFees      []ServiceFeeRequest `json:"service_fees" binding:"dive"`
}

func (r PriceConfigRequest) ToInput() usecase.PriceConfigInput {
	in := usecase.PriceConfigInput{ServiceFees: make([]entities.ServiceFee, 0, len(r.ServiceFees))}
	if r.ElectricityPrice != nil {
		in.ElectricityPrice = *r.ElectricityPrice
	}
	if r.WaterPrice != nil {
		in.WaterPrice = *r.WaterPrice
	}
	for _, s := range r.ServiceFees {
		in.ServiceFees = append(in.ServiceFees, entities.ServiceFee{Name: s.Name, Price: s.Price})
	}
	return in
}
