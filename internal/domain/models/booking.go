package models

import (
	"time"

	"born2ride/internal/domain"
)

// Booking links a customer to a vendor. Created only after the allocator
// has reserved capacity for hotel vendors.
type Booking struct {
	ID           int64                `json:"id"`
	VendorID     int64                `json:"vendor"`
	VendorName   string               `json:"vendor_name,omitempty"`
	BookingRef   string               `json:"booking_ref"`
	CustomerName string               `json:"customer_name"`
	Phone        string               `json:"phone"`
	CheckIn      *time.Time           `json:"check_in"`
	CheckOut     *time.Time           `json:"check_out"`
	TotalPrice   float64              `json:"total_price"`
	Status       domain.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

// BookingRequest is the allocator input. CheckIn/CheckOut are optional
// metadata and play no part in the capacity decision.
type BookingRequest struct {
	VendorID     int64
	CustomerName string
	Phone        string
	CheckIn      *time.Time
	CheckOut     *time.Time
	TotalPrice   float64
	Status       domain.BookingStatus
}
