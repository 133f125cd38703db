package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "born2ride/internal/config"
	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
	"born2ride/internal/repositories"
	"born2ride/internal/utils"

	"github.com/google/uuid"
)

// BookingService owns the allocation path: the room-count check, the
// decrement and the booking insert happen inside one transaction so a
// failed insert never leaks capacity.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

// Create reserves capacity and stores the booking. For hotel vendors the row
// lock serializes concurrent attempts so the counter cannot go negative.
func (s BookingService) Create(req models.BookingRequest) (models.Booking, error) {
	if req.VendorID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "vendor", Msg: "invalid id"}
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return models.Booking{}, domain.ValidationError{Field: "customer_name", Msg: "must not be empty"}
	}
	if strings.TrimSpace(req.Phone) == "" {
		return models.Booking{}, domain.ValidationError{Field: "phone", Msg: "must not be empty"}
	}
	if req.TotalPrice < 0 {
		return models.Booking{}, domain.ValidationError{Field: "total_price", Msg: "must not be negative"}
	}
	status := req.Status
	if status == "" {
		status = domain.BookingPending
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	var vendorType, vendorName string
	var rooms int
	err = tx.QueryRow(`SELECT vendor_type, name, rooms_available FROM vendors WHERE id=? FOR UPDATE`, req.VendorID).
		Scan(&vendorType, &vendorName, &rooms)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "vendor", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	isHotel := domain.VendorType(vendorType) == domain.VendorHotel
	if isHotel && rooms <= 0 {
		return models.Booking{}, domain.ConflictError{Resource: "vendor", Msg: "No rooms available"}
	}
	if isHotel {
		if _, err := tx.Exec(`UPDATE vendors SET rooms_available = rooms_available - 1 WHERE id=?`, req.VendorID); err != nil {
			return models.Booking{}, domain.InternalError{Err: err}
		}
	}

	ref := uuid.NewString()
	res, err := tx.Exec(`
		INSERT INTO bookings
			(vendor_id, booking_ref, customer_name, phone, check_in, check_out, total_price, status)
		VALUES (?,?,?,?,?,?,?,?)`,
		req.VendorID, ref, strings.TrimSpace(req.CustomerName), strings.TrimSpace(req.Phone),
		req.CheckIn, req.CheckOut, req.TotalPrice, string(status),
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "bookings", "create",
		fmt.Sprintf("booking_id=%d vendor_id=%d hotel=%t", id, req.VendorID, isHotel))

	return models.Booking{
		ID:           id,
		VendorID:     req.VendorID,
		VendorName:   vendorName,
		BookingRef:   ref,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		TotalPrice:   req.TotalPrice,
		Status:       status,
		CreatedAt:    time.Now(),
	}, nil
}

func (s BookingService) List() ([]models.Booking, error) {
	out, err := s.bookings().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s BookingService) Get(id int64) (models.Booking, error) {
	b, err := s.bookings().GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// UpdateStatus moves a booking through its lifecycle. It does not restore
// room counts; cancellation is bookkeeping only.
func (s BookingService) UpdateStatus(id int64, status domain.BookingStatus) (models.Booking, error) {
	err := s.bookings().UpdateStatus(id, status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "bookings", "update_status", fmt.Sprintf("booking_id=%d status=%s", id, status))
	return s.Get(id)
}

func (s BookingService) Delete(id int64) error {
	err := s.bookings().Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "bookings", "delete", fmt.Sprintf("booking_id=%d", id))
	return nil
}
