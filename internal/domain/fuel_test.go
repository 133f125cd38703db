package domain

import (
	"math"
	"testing"
)

func TestEstimateFuelBike(t *testing.T) {
	est := EstimateFuel(100, VehicleBike, DefaultFuelPrice)
	if est.MileageKmpl != 45 {
		t.Fatalf("mileage = %v, want 45", est.MileageKmpl)
	}
	if est.FuelLiters != 2.22 {
		t.Fatalf("fuel_liters = %v, want 2.22", est.FuelLiters)
	}
	if est.TotalFuelCost != 231.11 {
		t.Fatalf("total_fuel_cost = %v, want 231.11", est.TotalFuelCost)
	}
}

func TestEstimateFuelCar(t *testing.T) {
	est := EstimateFuel(150, VehicleCar, DefaultFuelPrice)
	if est.MileageKmpl != 15 {
		t.Fatalf("mileage = %v, want 15", est.MileageKmpl)
	}
	if est.FuelLiters != 10.0 {
		t.Fatalf("fuel_liters = %v, want 10.0", est.FuelLiters)
	}
	if est.TotalFuelCost != 1040.0 {
		t.Fatalf("total_fuel_cost = %v, want 1040.0", est.TotalFuelCost)
	}
}

func TestEstimateFuelUnknownVehicleFallsBackToCar(t *testing.T) {
	est := EstimateFuel(150, VehicleType("truck"), DefaultFuelPrice)
	if est.MileageKmpl != MileageCar {
		t.Fatalf("mileage = %v, want car fallback %v", est.MileageKmpl, MileageCar)
	}
}

func TestEstimateFuelZeroDistance(t *testing.T) {
	est := EstimateFuel(0, VehicleCar, DefaultFuelPrice)
	if est.FuelLiters != 0 || est.TotalFuelCost != 0 {
		t.Fatalf("zero distance should cost nothing, got %+v", est)
	}
}

func TestFuelVolumeMatchesDistance(t *testing.T) {
	for _, dist := range []float64{0, 1, 12.5, 100, 642.3, 2500} {
		for _, v := range []VehicleType{VehicleBike, VehicleCar} {
			est := EstimateFuel(dist, v, DefaultFuelPrice)
			got := est.FuelLiters * est.MileageKmpl
			// rounded liters leave at most half a cent per liter of slack
			if math.Abs(got-dist) > 0.005*est.MileageKmpl {
				t.Errorf("liters*mileage = %v, want ~%v (vehicle %s)", got, dist, v)
			}
		}
	}
}

func TestEstimateFuelCustomPrice(t *testing.T) {
	est := EstimateFuel(150, VehicleCar, 110)
	if est.FuelPricePerLiter != 110 {
		t.Fatalf("price echoed = %v, want 110", est.FuelPricePerLiter)
	}
	if est.TotalFuelCost != 1100.0 {
		t.Fatalf("total_fuel_cost = %v, want 1100.0", est.TotalFuelCost)
	}
}
