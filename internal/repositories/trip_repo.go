package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "born2ride/internal/config"
	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
)

// TripRepository wraps DB access for the trips table.
type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, origin, destination, origin_lat, origin_lng, dest_lat, dest_lng,
	distance_km, vehicle_type, fuel_cost, fuel_liters, stops_visited, created_at`

// Insert stores a trip and returns its generated id.
func (r TripRepository) Insert(t models.Trip) (int64, error) {
	stops, err := marshalStops(t.StopsVisited)
	if err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO trips
			(origin, destination, origin_lat, origin_lng, dest_lat, dest_lng,
			 distance_km, vehicle_type, fuel_cost, fuel_liters, stops_visited)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		t.Origin, t.Destination, t.OriginLat, t.OriginLng, t.DestLat, t.DestLng,
		t.DistanceKm, string(t.VehicleType), t.FuelCost, t.FuelLiters, stops,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns all trips, newest first.
func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.db().Query(`SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID loads one trip. Returns sql.ErrNoRows when absent.
func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id=?`, id)
	return scanTrip(row)
}

// Update rewrites a trip's stored fields. Existence is checked by callers;
// MySQL reports zero affected rows for a no-change update, so RowsAffected
// cannot distinguish "missing" from "identical".
func (r TripRepository) Update(id int64, t models.Trip) error {
	stops, err := marshalStops(t.StopsVisited)
	if err != nil {
		return err
	}
	_, err = r.db().Exec(`
		UPDATE trips SET
			origin=?, destination=?, origin_lat=?, origin_lng=?, dest_lat=?, dest_lng=?,
			distance_km=?, vehicle_type=?, fuel_cost=?, fuel_liters=?, stops_visited=?
		WHERE id=?`,
		t.Origin, t.Destination, t.OriginLat, t.OriginLng, t.DestLat, t.DestLng,
		t.DistanceKm, string(t.VehicleType), t.FuelCost, t.FuelLiters, stops, id,
	)
	return err
}

// Delete removes a trip. Returns sql.ErrNoRows when absent.
func (r TripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	var vehicle string
	var stops sql.NullString
	err := row.Scan(
		&t.ID, &t.Origin, &t.Destination,
		&t.OriginLat, &t.OriginLng, &t.DestLat, &t.DestLng,
		&t.DistanceKm, &vehicle, &t.FuelCost, &t.FuelLiters,
		&stops, &t.CreatedAt,
	)
	if err != nil {
		return models.Trip{}, err
	}
	t.VehicleType = domain.VehicleType(vehicle)
	t.StopsVisited = []models.Stop{}
	if stops.Valid && stops.String != "" {
		if err := json.Unmarshal([]byte(stops.String), &t.StopsVisited); err != nil {
			return models.Trip{}, err
		}
	}
	return t, nil
}

func marshalStops(stops []models.Stop) (string, error) {
	if stops == nil {
		stops = []models.Stop{}
	}
	b, err := json.Marshal(stops)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
