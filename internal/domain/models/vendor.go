package models

import "born2ride/internal/domain"

// Vendor is a listed roadside business: a food outlet, hotel or workshop.
// RoomsAvailable only means something for hotels and is decremented by
// successful bookings; AvailabilityStatus only means something for workshops.
type Vendor struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	VendorType         domain.VendorType   `json:"vendor_type"`
	Description        string              `json:"description"`
	Address            string              `json:"address"`
	Latitude           float64             `json:"latitude"`
	Longitude          float64             `json:"longitude"`
	Rating             float64             `json:"rating"`
	Phone              string              `json:"phone"`
	ImageURL           string              `json:"image_url"`
	IsOpen             bool                `json:"is_open"`
	PriceRange         string              `json:"price_range"`
	Timing             string              `json:"timing"`
	RoomsAvailable     int                 `json:"rooms_available"`
	BasePrice          float64             `json:"base_price"`
	Source             domain.VendorSource `json:"source"`
	AvailabilityStatus string              `json:"availability_status"`
}

// VendorFilter holds the optional equality filters for vendor listings.
// Nil fields mean "no filter".
type VendorFilter struct {
	Type   *domain.VendorType
	IsOpen *bool
	Source *domain.VendorSource
}
