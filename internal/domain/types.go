package domain

import "strings"

// VehicleType is the closed set of vehicle classes the fuel estimator knows.
type VehicleType string

const (
	VehicleBike VehicleType = "bike"
	VehicleCar  VehicleType = "car"
)

func ParseVehicleType(s string) (VehicleType, bool) {
	switch VehicleType(strings.ToLower(strings.TrimSpace(s))) {
	case VehicleBike:
		return VehicleBike, true
	case VehicleCar:
		return VehicleCar, true
	}
	return "", false
}

// VendorType distinguishes food outlets, hotels and repair workshops.
type VendorType string

const (
	VendorFood     VendorType = "food"
	VendorHotel    VendorType = "hotel"
	VendorWorkshop VendorType = "workshop"
)

func ParseVendorType(s string) (VendorType, bool) {
	switch VendorType(strings.ToLower(strings.TrimSpace(s))) {
	case VendorFood:
		return VendorFood, true
	case VendorHotel:
		return VendorHotel, true
	case VendorWorkshop:
		return VendorWorkshop, true
	}
	return "", false
}

// VendorSource records which listing platform a vendor came from.
type VendorSource string

const (
	SourceDirect  VendorSource = "direct"
	SourceGoibibo VendorSource = "goibibo"
	SourceMMT     VendorSource = "mmt"
	SourceYatra   VendorSource = "yatra"
	SourceBooking VendorSource = "booking"
)

func ParseVendorSource(s string) (VendorSource, bool) {
	switch VendorSource(strings.ToLower(strings.TrimSpace(s))) {
	case SourceDirect:
		return SourceDirect, true
	case SourceGoibibo:
		return SourceGoibibo, true
	case SourceMMT:
		return SourceMMT, true
	case SourceYatra:
		return SourceYatra, true
	case SourceBooking:
		return SourceBooking, true
	}
	return "", false
}

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(strings.ToLower(strings.TrimSpace(s))) {
	case BookingPending:
		return BookingPending, true
	case BookingConfirmed:
		return BookingConfirmed, true
	case BookingCancelled:
		return BookingCancelled, true
	}
	return "", false
}

// ServiceType categorizes emergency services.
type ServiceType string

const (
	ServicePolice    ServiceType = "police"
	ServiceHospital  ServiceType = "hospital"
	ServiceAmbulance ServiceType = "ambulance"
	ServiceFire      ServiceType = "fire"
	ServiceRoadside  ServiceType = "roadside"
)

func ParseServiceType(s string) (ServiceType, bool) {
	switch ServiceType(strings.ToLower(strings.TrimSpace(s))) {
	case ServicePolice:
		return ServicePolice, true
	case ServiceHospital:
		return ServiceHospital, true
	case ServiceAmbulance:
		return ServiceAmbulance, true
	case ServiceFire:
		return ServiceFire, true
	case ServiceRoadside:
		return ServiceRoadside, true
	}
	return "", false
}
