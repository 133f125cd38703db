package models

import (
	"time"

	"born2ride/internal/domain"
)

// Stop is one waypoint visited during a trip.
type Stop struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat,omitempty"`
	Lng  float64 `json:"lng,omitempty"`
}

// Trip is a stored journey with derived fuel figures. Fuel fields are always
// computed server-side, never taken from the client.
type Trip struct {
	ID           int64              `json:"id"`
	Origin       string             `json:"origin"`
	Destination  string             `json:"destination"`
	OriginLat    float64            `json:"origin_lat"`
	OriginLng    float64            `json:"origin_lng"`
	DestLat      float64            `json:"dest_lat"`
	DestLng      float64            `json:"dest_lng"`
	DistanceKm   float64            `json:"distance_km"`
	VehicleType  domain.VehicleType `json:"vehicle_type"`
	FuelCost     float64            `json:"fuel_cost"`
	FuelLiters   float64            `json:"fuel_liters"`
	StopsVisited []Stop             `json:"stops_visited"`
	CreatedAt    time.Time          `json:"created_at"`
}
