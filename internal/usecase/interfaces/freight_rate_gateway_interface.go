package interfaces

import "context"

// FreightRate is the external rate table used to price a shipment leg.
type FreightRate struct {
	PricePerKgKm        float64 `json:"price_per_kg_km"`
	PricePerM3Km        float64 `json:"price_per_m3_km"`
	MinimumCharge       float64 `json:"minimum_charge"`
	ConsolidationFactor float64 `json:"consolidation_factor"`
}

// IFreightRateGateway abstracts the external freight base-rate service.
type IFreightRateGateway interface {
	GetRate(ctx context.Context) (FreightRate, error)
}
