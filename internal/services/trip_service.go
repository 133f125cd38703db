package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "born2ride/internal/config"
	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
	"born2ride/internal/repositories"
	"born2ride/internal/utils"
)

// TripInput carries client-supplied trip fields. Fuel figures are not part of
// the input; the service derives them.
type TripInput struct {
	Origin       string
	Destination  string
	OriginLat    float64
	OriginLng    float64
	DestLat      float64
	DestLng      float64
	DistanceKm   float64
	VehicleType  string
	StopsVisited []models.Stop
}

type TripService struct {
	TripRepo  repositories.TripRepository
	RequestID string
}

func (s TripService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: intconfig.DB}
}

// Create validates the input, derives fuel cost and volume at the default
// fuel price, and stores the trip.
func (s TripService) Create(in TripInput) (models.Trip, error) {
	trip, err := tripFromInput(in)
	if err != nil {
		return models.Trip{}, err
	}

	id, err := s.trips().Insert(trip)
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "create", fmt.Sprintf("trip_id=%d distance_km=%.1f", id, trip.DistanceKm))

	created, err := s.trips().GetByID(id)
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return created, nil
}

func (s TripService) List() ([]models.Trip, error) {
	out, err := s.trips().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s TripService) Get(id int64) (models.Trip, error) {
	t, err := s.trips().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
	}
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return t, nil
}

// Update replaces a trip's client fields and re-derives the fuel figures.
func (s TripService) Update(id int64, in TripInput) (models.Trip, error) {
	trip, err := tripFromInput(in)
	if err != nil {
		return models.Trip{}, err
	}

	if _, err := s.Get(id); err != nil {
		return models.Trip{}, err
	}
	if err := s.trips().Update(id, trip); err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "update", fmt.Sprintf("trip_id=%d", id))

	updated, err := s.trips().GetByID(id)
	if err != nil {
		return models.Trip{}, domain.InternalError{Err: err}
	}
	return updated, nil
}

func (s TripService) Delete(id int64) error {
	err := s.trips().Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "trip", Err: err}
	}
	if err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "delete", fmt.Sprintf("trip_id=%d", id))
	return nil
}

func tripFromInput(in TripInput) (models.Trip, error) {
	origin := strings.TrimSpace(in.Origin)
	destination := strings.TrimSpace(in.Destination)
	if origin == "" {
		return models.Trip{}, domain.ValidationError{Field: "origin", Msg: "must not be empty"}
	}
	if destination == "" {
		return models.Trip{}, domain.ValidationError{Field: "destination", Msg: "must not be empty"}
	}
	if in.DistanceKm < 0 {
		return models.Trip{}, domain.ValidationError{Field: "distance_km", Msg: "must not be negative"}
	}
	vehicle, ok := domain.ParseVehicleType(in.VehicleType)
	if !ok {
		return models.Trip{}, domain.ValidationError{Field: "vehicle_type", Msg: "must be one of: bike, car"}
	}

	est := domain.EstimateFuel(in.DistanceKm, vehicle, domain.DefaultFuelPrice)

	stops := in.StopsVisited
	if stops == nil {
		stops = []models.Stop{}
	}

	return models.Trip{
		Origin:       origin,
		Destination:  destination,
		OriginLat:    in.OriginLat,
		OriginLng:    in.OriginLng,
		DestLat:      in.DestLat,
		DestLng:      in.DestLng,
		DistanceKm:   in.DistanceKm,
		VehicleType:  vehicle,
		FuelCost:     est.TotalFuelCost,
		FuelLiters:   est.FuelLiters,
		StopsVisited: stops,
	}, nil
}
