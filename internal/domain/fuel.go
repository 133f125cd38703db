package domain

import "math"

// DefaultFuelPrice is the petrol price (INR per liter) used when the caller
// does not supply one.
const DefaultFuelPrice = 104.0

// Mileage in km per liter by vehicle class. Unknown classes fall back to the
// car figure.
const (
	MileageBike = 45.0
	MileageCar  = 15.0
)

// FuelEstimate is the output of the fuel cost calculation.
type FuelEstimate struct {
	MileageKmpl       float64 `json:"mileage_kmpl"`
	FuelLiters        float64 `json:"fuel_liters"`
	FuelPricePerLiter float64 `json:"fuel_price_per_liter"`
	TotalFuelCost     float64 `json:"total_fuel_cost"`
}

// EstimateFuel computes fuel volume and cost for a trip. Liters and cost are
// rounded to 2 decimals independently; the cost comes from the unrounded
// liters figure. Inputs are validated upstream (distance >= 0, known vehicle).
func EstimateFuel(distanceKm float64, vehicle VehicleType, fuelPrice float64) FuelEstimate {
	mileage := Mileage(vehicle)
	liters := distanceKm / mileage
	return FuelEstimate{
		MileageKmpl:       mileage,
		FuelLiters:        round2(liters),
		FuelPricePerLiter: fuelPrice,
		TotalFuelCost:     round2(liters * fuelPrice),
	}
}

// Mileage returns km per liter for a vehicle class.
func Mileage(vehicle VehicleType) float64 {
	if vehicle == VehicleBike {
		return MileageBike
	}
	return MileageCar
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
