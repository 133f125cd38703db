package handlers

import (
	"net/http"

	intconfig "born2ride/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "born2ride backend running"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM vendors").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "vendors_in_db": count})
}

// Overview lists the available endpoints.
func Overview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Born 2 Ride API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"vendors":            "/api/vendors/",
			"vendors_by_type":    "/api/vendors/?type=food|hotel|workshop",
			"bookings":           "/api/bookings/",
			"emergency_services": "/api/emergency/",
			"trips":              "/api/trips/",
			"calculate_fuel":     "/api/calculate-fuel/",
		},
	})
}
