package db

import (
	"database/sql"
	"log"
)

// ddl statements are idempotent so EnsureSchema can run at every startup.
// Vendor deletion cascades to bookings.
var ddl = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		origin VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		origin_lat DOUBLE NOT NULL DEFAULT 0,
		origin_lng DOUBLE NOT NULL DEFAULT 0,
		dest_lat DOUBLE NOT NULL DEFAULT 0,
		dest_lng DOUBLE NOT NULL DEFAULT 0,
		distance_km DOUBLE NOT NULL,
		vehicle_type VARCHAR(20) NOT NULL,
		fuel_cost DOUBLE NOT NULL,
		fuel_liters DOUBLE NOT NULL DEFAULT 0,
		stops_visited JSON NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS vendors (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		vendor_type VARCHAR(20) NOT NULL,
		description TEXT,
		address VARCHAR(255) NOT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		rating DOUBLE NOT NULL DEFAULT 4.0,
		phone VARCHAR(15) NOT NULL,
		image_url VARCHAR(255) NOT NULL DEFAULT '',
		is_open TINYINT(1) NOT NULL DEFAULT 1,
		price_range VARCHAR(10) NOT NULL DEFAULT '₹₹',
		timing VARCHAR(100) NOT NULL DEFAULT '9:00 AM - 9:00 PM',
		rooms_available INT NOT NULL DEFAULT 0,
		base_price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		source VARCHAR(20) NOT NULL DEFAULT 'direct',
		availability_status VARCHAR(20) NOT NULL DEFAULT 'Available',
		KEY idx_vendors_type (vendor_type),
		KEY idx_vendors_source (source)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		vendor_id BIGINT NOT NULL,
		booking_ref CHAR(36) NOT NULL,
		customer_name VARCHAR(100) NOT NULL,
		phone VARCHAR(15) NOT NULL,
		check_in DATETIME NULL,
		check_out DATETIME NULL,
		total_price DECIMAL(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_bookings_ref (booking_ref),
		KEY idx_bookings_vendor (vendor_id),
		CONSTRAINT fk_bookings_vendor FOREIGN KEY (vendor_id)
			REFERENCES vendors(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS emergency_services (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		service_type VARCHAR(20) NOT NULL,
		phone VARCHAR(15) NOT NULL,
		address VARCHAR(255) NOT NULL,
		latitude DOUBLE NOT NULL,
		longitude DOUBLE NOT NULL,
		is_24x7 TINYINT(1) NOT NULL DEFAULT 1,
		KEY idx_emergency_type (service_type)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables when missing.
func EnsureSchema(db *sql.DB) error {
	log.Println("Checking database schema...")
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
