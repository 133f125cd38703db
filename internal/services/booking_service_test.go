package services

import (
	"fmt"
	"testing"

	"born2ride/internal/domain"
	"born2ride/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func hotelRequest(vendorID int64) models.BookingRequest {
	return models.BookingRequest{
		VendorID:     vendorID,
		CustomerName: "Ravi Kumar",
		Phone:        "+91 98765 00001",
		TotalPrice:   1200,
	}
}

func TestBookingCreateHotelDecrementsRooms(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vendor_type, name, rooms_available FROM vendors").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"vendor_type", "name", "rooms_available"}).
			AddRow("hotel", "Highway Rest Inn", 1))
	mock.ExpectExec("UPDATE vendors SET rooms_available").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	svc := BookingService{DB: db}
	booking, err := svc.Create(hotelRequest(7))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.ID != 12 {
		t.Fatalf("booking id = %d, want 12", booking.ID)
	}
	if booking.Status != domain.BookingPending {
		t.Fatalf("status = %s, want pending", booking.Status)
	}
	if booking.BookingRef == "" {
		t.Fatalf("booking_ref should be generated")
	}
	if booking.VendorName != "Highway Rest Inn" {
		t.Fatalf("vendor_name = %q", booking.VendorName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateHotelFullRejected(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vendor_type, name, rooms_available FROM vendors").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"vendor_type", "name", "rooms_available"}).
			AddRow("hotel", "Highway Rest Inn", 0))
	mock.ExpectRollback()

	svc := BookingService{DB: db}
	_, err = svc.Create(hotelRequest(7))
	if !domain.IsConflict(err) {
		t.Fatalf("expected capacity conflict, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateNonHotelSkipsRoomCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// rooms_available is 0 here and must not matter for a workshop
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vendor_type, name, rooms_available FROM vendors").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"vendor_type", "name", "rooms_available"}).
			AddRow("workshop", "Quick Puncture Repair", 0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	svc := BookingService{DB: db}
	booking, err := svc.Create(hotelRequest(3))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.ID != 5 {
		t.Fatalf("booking id = %d, want 5", booking.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateVendorMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vendor_type, name, rooms_available FROM vendors").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"vendor_type", "name", "rooms_available"}))
	mock.ExpectRollback()

	svc := BookingService{DB: db}
	_, err = svc.Create(hotelRequest(999))
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateInsertFailureRollsBackDecrement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT vendor_type, name, rooms_available FROM vendors").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"vendor_type", "name", "rooms_available"}).
			AddRow("hotel", "Highway Rest Inn", 4))
	mock.ExpectExec("UPDATE vendors SET rooms_available").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(fmt.Errorf("insert failed"))
	mock.ExpectRollback()

	svc := BookingService{DB: db}
	_, err = svc.Create(hotelRequest(7))
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateValidation(t *testing.T) {
	svc := BookingService{}

	if _, err := svc.Create(models.BookingRequest{VendorID: 0, CustomerName: "A", Phone: "1"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for vendor id, got %v", err)
	}
	if _, err := svc.Create(models.BookingRequest{VendorID: 1, CustomerName: " ", Phone: "1"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for customer name, got %v", err)
	}
	if _, err := svc.Create(models.BookingRequest{VendorID: 1, CustomerName: "A", Phone: "1", TotalPrice: -5}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for total price, got %v", err)
	}
}
