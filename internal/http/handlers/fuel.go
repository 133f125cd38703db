package handlers

import (
	"net/http"

	"born2ride/internal/domain"

	"github.com/gin-gonic/gin"
)

type fuelPayload struct {
	DistanceKm  *float64 `json:"distance_km" binding:"required"`
	VehicleType string   `json:"vehicle_type" binding:"required"`
	FuelPrice   *float64 `json:"fuel_price"`
}

// POST /api/calculate-fuel/
func CalculateFuel(c *gin.Context) {
	var p fuelPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if *p.DistanceKm < 0 {
		RespondDomainError(c, domain.ValidationError{Field: "distance_km", Msg: "must not be negative"})
		return
	}
	vehicle, ok := domain.ParseVehicleType(p.VehicleType)
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "vehicle_type", Msg: "must be one of: bike, car"})
		return
	}
	price := domain.DefaultFuelPrice
	if p.FuelPrice != nil {
		if *p.FuelPrice < 0 {
			RespondDomainError(c, domain.ValidationError{Field: "fuel_price", Msg: "must not be negative"})
			return
		}
		price = *p.FuelPrice
	}

	est := domain.EstimateFuel(*p.DistanceKm, vehicle, price)
	c.JSON(http.StatusOK, gin.H{
		"distance_km":          *p.DistanceKm,
		"vehicle_type":         vehicle,
		"mileage_kmpl":         est.MileageKmpl,
		"fuel_liters":          est.FuelLiters,
		"fuel_price_per_liter": est.FuelPricePerLiter,
		"total_fuel_cost":      est.TotalFuelCost,
	})
}
