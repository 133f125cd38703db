package repositories

import (
	"database/sql"

	intconfig "born2ride/internal/config"
	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
)

// EmergencyRepository reads the emergency_services reference table.
type EmergencyRepository struct {
	DB *sql.DB
}

func (r EmergencyRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const emergencyColumns = `id, name, service_type, phone, address, latitude, longitude, is_24x7`

// List returns emergency services, grouped by category then name.
func (r EmergencyRepository) List(f models.EmergencyFilter) ([]models.EmergencyService, error) {
	query := `SELECT ` + emergencyColumns + ` FROM emergency_services`
	args := []any{}
	if f.Type != nil {
		query += ` WHERE service_type=?`
		args = append(args, string(*f.Type))
	}
	query += ` ORDER BY service_type ASC, name ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.EmergencyService{}
	for rows.Next() {
		s, err := scanEmergency(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID loads one service. Returns sql.ErrNoRows when absent.
func (r EmergencyRepository) GetByID(id int64) (models.EmergencyService, error) {
	row := r.db().QueryRow(`SELECT `+emergencyColumns+` FROM emergency_services WHERE id=?`, id)
	return scanEmergency(row)
}

func scanEmergency(row rowScanner) (models.EmergencyService, error) {
	var s models.EmergencyService
	var stype string
	err := row.Scan(
		&s.ID, &s.Name, &stype, &s.Phone, &s.Address,
		&s.Latitude, &s.Longitude, &s.Is24x7,
	)
	if err != nil {
		return models.EmergencyService{}, err
	}
	s.ServiceType = domain.ServiceType(stype)
	return s, nil
}
