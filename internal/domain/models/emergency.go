package models

import "born2ride/internal/domain"

// EmergencyService is read-only reference data for travelers in trouble.
type EmergencyService struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	ServiceType domain.ServiceType `json:"service_type"`
	Phone       string             `json:"phone"`
	Address     string             `json:"address"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Is24x7      bool               `json:"is_24x7"`
}

// EmergencyFilter holds the optional category filter for listings.
type EmergencyFilter struct {
	Type *domain.ServiceType
}
