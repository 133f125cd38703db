package handlers

import (
	"net/http"

	"born2ride/internal/domain/models"
	"born2ride/internal/http/middleware"
	"born2ride/internal/services"

	"github.com/gin-gonic/gin"
)

type tripPayload struct {
	Origin       string        `json:"origin" binding:"required"`
	Destination  string        `json:"destination" binding:"required"`
	OriginLat    float64       `json:"origin_lat"`
	OriginLng    float64       `json:"origin_lng"`
	DestLat      float64       `json:"dest_lat"`
	DestLng      float64       `json:"dest_lng"`
	DistanceKm   *float64      `json:"distance_km" binding:"required"`
	VehicleType  string        `json:"vehicle_type" binding:"required"`
	StopsVisited []models.Stop `json:"stops_visited"`
}

func tripService(c *gin.Context) services.TripService {
	return services.TripService{RequestID: middleware.GetRequestID(c)}
}

func (p tripPayload) input() services.TripInput {
	return services.TripInput{
		Origin:       p.Origin,
		Destination:  p.Destination,
		OriginLat:    p.OriginLat,
		OriginLng:    p.OriginLng,
		DestLat:      p.DestLat,
		DestLng:      p.DestLng,
		DistanceKm:   *p.DistanceKm,
		VehicleType:  p.VehicleType,
		StopsVisited: p.StopsVisited,
	}
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var p tripPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	trip, err := tripService(c).Create(p.input())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	trips, err := tripService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	trip, err := tripService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// PUT /api/trips/:id — fuel fields are re-derived, never client-supplied.
func UpdateTrip(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var p tripPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	trip, err := tripService(c).Update(id, p.input())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := tripService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
