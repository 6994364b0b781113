package entities

import (
	"errors"
	"testing"
)

func testPriceConfig() PriceConfig {
	return PriceConfig{
		ID:               "cfg-1",
		ElectricityPrice: 3500,
		WaterPrice:       20000,
		ServiceFees: []ServiceFee{
			{Name: "wifi", Price: 50000},
			{Name: "garbage", Price: 20000},
		},
		Active: true,
	}
}

func TestCalculateInvoiceCharges(t *testing.T) {
	room := Room{ID: "room-1", BasePrice: 1500000, LastReadings: MeterReadings{Electricity: 100, Water: 10}}

	t.Run("full breakdown", func(t *testing.T) {
		res, err := CalculateInvoiceCharges(room, testPriceConfig(), 150, 14, -10000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Electricity.Old != 100 || res.Electricity.New != 150 || res.Electricity.Usage != 50 {
			t.Fatalf("unexpected electricity readings: %+v", res.Electricity)
		}
		if res.Electricity.PriceSnapshot != 3500 || res.Electricity.Total != 175000 {
			t.Fatalf("unexpected electricity cost: %+v", res.Electricity)
		}
		if res.Water.Usage != 4 || res.Water.PriceSnapshot != 20000 || res.Water.Total != 80000 {
			t.Fatalf("unexpected water cost: %+v", res.Water)
		}
		if len(res.Services) != 2 || res.Services[0].Name != "wifi" || res.Services[1].Price != 20000 {
			t.Fatalf("unexpected services: %+v", res.Services)
		}
		if res.RoomPriceSnapshot != 1500000 || res.AdditionalFees != -10000 {
			t.Fatalf("unexpected snapshots: %+v", res)
		}
		if res.TotalAmount != 1815000 {
			t.Fatalf("expected 1815000, got %v", res.TotalAmount)
		}
	})

	t.Run("total follows the billing formula", func(t *testing.T) {
		cases := []struct {
			basePrice, oldElec, newElec, oldWater, newWater, elecPrice, waterPrice, additional float64
			services                                                                           []ServiceFee
		}{
			{basePrice: 0, oldElec: 0, newElec: 0, oldWater: 0, newWater: 0, elecPrice: 0, waterPrice: 0},
			{basePrice: 2000000, oldElec: 1200, newElec: 1200, oldWater: 55, newWater: 55, elecPrice: 4000, waterPrice: 15000},
			{basePrice: 1800000, oldElec: 10, newElec: 30.5, oldWater: 3, newWater: 7, elecPrice: 3500, waterPrice: 20000, additional: 25000,
				services: []ServiceFee{{Name: "parking", Price: 100000}}},
			{basePrice: 900000, oldElec: 500, newElec: 612, oldWater: 20, newWater: 31, elecPrice: 3000, waterPrice: 18000, additional: -50000,
				services: []ServiceFee{{Name: "wifi", Price: 60000}, {Name: "garbage", Price: 15000}}},
		}

		for _, tc := range cases {
			r := Room{BasePrice: tc.basePrice, LastReadings: MeterReadings{Electricity: tc.oldElec, Water: tc.oldWater}}
			cfg := PriceConfig{ElectricityPrice: tc.elecPrice, WaterPrice: tc.waterPrice, ServiceFees: tc.services}
			res, err := CalculateInvoiceCharges(r, cfg, tc.newElec, tc.newWater, tc.additional)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			servicesCost := 0.0
			for _, s := range tc.services {
				servicesCost += s.Price
			}
			want := tc.basePrice + (tc.newElec-tc.oldElec)*tc.elecPrice + (tc.newWater-tc.oldWater)*tc.waterPrice + servicesCost + tc.additional
			if res.TotalAmount != want {
				t.Fatalf("expected total %v, got %v (case %+v)", want, res.TotalAmount, tc)
			}
		}
	})

	t.Run("electricity decreased", func(t *testing.T) {
		_, err := CalculateInvoiceCharges(room, testPriceConfig(), 99, 14, 0)
		if !errors.Is(err, ErrElectricityReadingDecreased) {
			t.Fatalf("expected ErrElectricityReadingDecreased, got %v", err)
		}
	})

	t.Run("water decreased", func(t *testing.T) {
		_, err := CalculateInvoiceCharges(room, testPriceConfig(), 150, 9.5, 0)
		if !errors.Is(err, ErrWaterReadingDecreased) {
			t.Fatalf("expected ErrWaterReadingDecreased, got %v", err)
		}
	})

	t.Run("services are copied", func(t *testing.T) {
		cfg := testPriceConfig()
		res, err := CalculateInvoiceCharges(room, cfg, 100, 10, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg.ServiceFees[0].Price = 1
		if res.Services[0].Price != 50000 {
			t.Fatalf("service snapshot changed with config: %+v", res.Services)
		}
		if res.TotalAmount != 1570000 {
			t.Fatalf("expected base price plus services, got %v", res.TotalAmount)
		}
	})
}
