package db

import (
	"database/sql"
	"log"
)

type seedVendor struct {
	name, vtype, description, address string
	lat, lng, rating                  float64
	phone, priceRange                 string
	rooms                             int
	basePrice                         float64
	source                            string
}

type seedService struct {
	name, stype, phone, address string
	lat, lng                    float64
}

var seedVendors = []seedVendor{
	{"Highway Dhaba", "food", "Authentic North Indian highway dhaba with famous dal makhani and butter chicken", "NH-44, Km 125, Near Toll Plaza", 13.0827, 80.2707, 4.5, "+91 98765 43210", "₹₹", 0, 0, "direct"},
	{"South Indian Tiffin Center", "food", "Fresh dosas, idlis, and authentic filter coffee", "Main Road, Opposite Bus Stand", 13.0750, 80.2650, 4.7, "+91 98765 43212", "₹", 0, 0, "direct"},
	{"Highway Rest Inn", "hotel", "Budget-friendly rooms with AC, TV, and attached bathroom", "NH-44, Km 130, Beside Petrol Pump", 13.0850, 80.2750, 4.0, "+91 98765 43220", "₹₹", 12, 1200, "goibibo"},
	{"Travelers Lodge", "hotel", "Comfortable stay with parking, WiFi, and 24x7 room service", "Service Road, Near Highway Exit", 13.0950, 80.2850, 4.4, "+91 98765 43221", "₹₹₹", 8, 2100, "mmt"},
	{"Budget Stay", "hotel", "Affordable dormitory and private rooms for solo travelers", "Main Market, Near Bus Station", 13.0800, 80.2680, 3.8, "+91 98765 43222", "₹", 20, 650, "direct"},
	{"Quick Puncture Repair", "workshop", "Fast puncture repair, air filling, and basic bike servicing", "Highway Service Road, Near Milestone 128", 13.0880, 80.2780, 4.6, "+91 98765 43230", "₹", 0, 150, "direct"},
	{"AutoCare Service Center", "workshop", "Full car service, oil change, and emergency repairs", "Industrial Area, Near Highway", 13.0920, 80.2820, 4.3, "+91 98765 43231", "₹₹", 0, 500, "direct"},
}

var seedServices = []seedService{
	{"Highway Police Control Room", "police", "100", "NH-44, Police Outpost", 13.0860, 80.2760},
	{"Government General Hospital", "hospital", "+91 44 2530 5000", "Park Town, Near Central Station", 13.0890, 80.2790},
	{"108 Ambulance Service", "ambulance", "108", "Emergency Medical Services", 13.0850, 80.2750},
	{"Fire and Rescue Station", "fire", "101", "Fire Station Road, Near Highway", 13.0830, 80.2730},
	{"Highway Towing Service", "roadside", "+91 98765 00200", "All Highway Areas, On Call", 13.0900, 80.2800},
}

// Seed inserts the sample dataset. Only runs against empty tables so
// restarts do not duplicate rows.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM vendors`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		for _, v := range seedVendors {
			if _, err := db.Exec(`
				INSERT INTO vendors
					(name, vendor_type, description, address, latitude, longitude,
					 rating, phone, price_range, rooms_available, base_price, source)
				VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
				v.name, v.vtype, v.description, v.address, v.lat, v.lng,
				v.rating, v.phone, v.priceRange, v.rooms, v.basePrice, v.source,
			); err != nil {
				return err
			}
		}
		log.Printf("Seeded %d vendors", len(seedVendors))
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM emergency_services`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		for _, s := range seedServices {
			if _, err := db.Exec(`
				INSERT INTO emergency_services
					(name, service_type, phone, address, latitude, longitude, is_24x7)
				VALUES (?,?,?,?,?,?,1)`,
				s.name, s.stype, s.phone, s.address, s.lat, s.lng,
			); err != nil {
				return err
			}
		}
		log.Printf("Seeded %d emergency services", len(seedServices))
	}

	return nil
}
