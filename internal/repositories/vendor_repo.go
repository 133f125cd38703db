package repositories

import (
	"database/sql"
	"strings"

	intconfig "born2ride/internal/config"
	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
)

// VendorRepository wraps DB access for the vendors table. The room counter is
// never touched here; only the booking allocator mutates it, inside its
// transaction.
type VendorRepository struct {
	DB *sql.DB
}

func (r VendorRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vendorColumns = `id, name, vendor_type, COALESCE(description,''), address,
	latitude, longitude, rating, phone, image_url, is_open, price_range,
	timing, rooms_available, base_price, source, availability_status`

// List returns vendors matching the filter, best rated first.
func (r VendorRepository) List(f models.VendorFilter) ([]models.Vendor, error) {
	where := []string{}
	args := []any{}
	if f.Type != nil {
		where = append(where, "vendor_type=?")
		args = append(args, string(*f.Type))
	}
	if f.IsOpen != nil {
		where = append(where, "is_open=?")
		args = append(args, *f.IsOpen)
	}
	if f.Source != nil {
		where = append(where, "source=?")
		args = append(args, string(*f.Source))
	}

	query := `SELECT ` + vendorColumns + ` FROM vendors`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY rating DESC, id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// GetByID loads one vendor. Returns sql.ErrNoRows when absent.
func (r VendorRepository) GetByID(id int64) (models.Vendor, error) {
	row := r.db().QueryRow(`SELECT `+vendorColumns+` FROM vendors WHERE id=?`, id)
	return scanVendor(row)
}

func scanVendor(row rowScanner) (models.Vendor, error) {
	var v models.Vendor
	var vtype, source string
	err := row.Scan(
		&v.ID, &v.Name, &vtype, &v.Description, &v.Address,
		&v.Latitude, &v.Longitude, &v.Rating, &v.Phone, &v.ImageURL,
		&v.IsOpen, &v.PriceRange, &v.Timing, &v.RoomsAvailable,
		&v.BasePrice, &source, &v.AvailabilityStatus,
	)
	if err != nil {
		return models.Vendor{}, err
	}
	v.VendorType = domain.VendorType(vtype)
	v.Source = domain.VendorSource(source)
	return v, nil
}
