package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrElectricityReadingDecreased = errors.New("new electricity reading is lower than the previous one")
	ErrWaterReadingDecreased       = errors.New("new water reading is lower than the previous one")
)

// InvoiceCharges is the outcome of billing one room for one period.
type InvoiceCharges struct {
	Electricity       UtilityCharge
	Water             UtilityCharge
	Services          []ServiceFee
	RoomPriceSnapshot float64
	AdditionalFees    float64
	TotalAmount       float64
}

// CalculateInvoiceCharges bills a room from its last readings up to the new
// ones using the given price config:
//
//	total = basePrice + elecUsage*elecPrice + waterUsage*waterPrice + sum(services) + additionalFees
//
// additionalFees may be negative (discount). The service list is copied so the
// result does not alias cfg.ServiceFees.
func CalculateInvoiceCharges(room Room, cfg PriceConfig, newElectricity, newWater, additionalFees float64) (InvoiceCharges, error) {
	if newElectricity < room.LastReadings.Electricity {
		return InvoiceCharges{}, ErrElectricityReadingDecreased
	}
	if newWater < room.LastReadings.Water {
		return InvoiceCharges{}, ErrWaterReadingDecreased
	}

	elec := utilityCharge(room.LastReadings.Electricity, newElectricity, cfg.ElectricityPrice)
	water := utilityCharge(room.LastReadings.Water, newWater, cfg.WaterPrice)

	services := make([]ServiceFee, 0, len(cfg.ServiceFees))
	servicesCost := decimal.Zero
	for _, s := range cfg.ServiceFees {
		services = append(services, ServiceFee{Name: s.Name, Price: s.Price})
		servicesCost = servicesCost.Add(decimal.NewFromFloat(s.Price))
	}

	total := decimal.NewFromFloat(room.BasePrice).
		Add(decimal.NewFromFloat(elec.Total)).
		Add(decimal.NewFromFloat(water.Total)).
		Add(servicesCost).
		Add(decimal.NewFromFloat(additionalFees))

	return InvoiceCharges{
		Electricity:       elec,
		Water:             water,
		Services:          services,
		RoomPriceSnapshot: room.BasePrice,
		AdditionalFees:    additionalFees,
		TotalAmount:       total.InexactFloat64(),
	}, nil
}

func utilityCharge(oldReading, newReading, price float64) UtilityCharge {
	usage := decimal.NewFromFloat(newReading).Sub(decimal.NewFromFloat(oldReading))
	cost := usage.Mul(decimal.NewFromFloat(price))
	return UtilityCharge{
		Old:           oldReading,
		New:           newReading,
		Usage:         usage.InexactFloat64(),
		PriceSnapshot: price,
		Total:         cost.InexactFloat64(),
	}
}
