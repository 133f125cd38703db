package repositories

import (
	"database/sql"

	intconfig "born2ride/internal/config"
	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
)

// BookingRepository covers reads and simple updates for bookings. Creation
// goes through the allocator in services, which needs its own transaction.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `b.id, b.vendor_id, v.name, b.booking_ref, b.customer_name,
	b.phone, b.check_in, b.check_out, b.total_price, b.status, b.created_at`

const bookingFrom = ` FROM bookings b JOIN vendors v ON v.id = b.vendor_id`

// List returns all bookings, newest first.
func (r BookingRepository) List() ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT ` + bookingColumns + bookingFrom + ` ORDER BY b.created_at DESC, b.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID loads one booking. Returns sql.ErrNoRows when absent.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+bookingFrom+` WHERE b.id=?`, id)
	return scanBooking(row)
}

// UpdateStatus sets the booking lifecycle state.
func (r BookingRepository) UpdateStatus(id int64, status domain.BookingStatus) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=? WHERE id=?`, string(status), id)
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

// Delete removes a booking. Returns sql.ErrNoRows when absent.
func (r BookingRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
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

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var status string
	var checkIn, checkOut sql.NullTime
	err := row.Scan(
		&b.ID, &b.VendorID, &b.VendorName, &b.BookingRef, &b.CustomerName,
		&b.Phone, &checkIn, &checkOut, &b.TotalPrice, &status, &b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	if checkIn.Valid {
		t := checkIn.Time
		b.CheckIn = &t
	}
	if checkOut.Valid {
		t := checkOut.Time
		b.CheckOut = &t
	}
	return b, nil
}
