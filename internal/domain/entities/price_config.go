package entities

import "time"

// ServiceFee is a flat monthly charge (wifi, garbage collection, ...).
type ServiceFee struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PriceConfig is the global price list used to bill utilities.
//
// Only one config is active at a time. Invoices copy the prices they use,
// so editing the active config never changes issued invoices.
type PriceConfig struct {
	ID               string       `json:"id"`
	ElectricityPrice float64      `json:"electricity_price"`
	WaterPrice       float64      `json:"water_price"`
	ServiceFees      []ServiceFee `json:"service_fees"`
	Active           bool         `json:"active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
