package api

import (
	"log"
	stdhttp "net/http"

	intconfig "born2ride/internal/config"
	h "born2ride/internal/http/handlers"
	"born2ride/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("", h.Overview)
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.POST("", h.CreateTrip)
		trips.GET("/:id", h.GetTripByID)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)

		vendors := api.Group("/vendors")
		vendors.GET("", h.GetVendors)
		vendors.GET("/:id", h.GetVendorByID)

		bookings := api.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.PUT("/:id", h.UpdateBookingStatus)
		bookings.DELETE("/:id", h.DeleteBooking)
		bookings.GET("/:id/voucher", h.GetBookingVoucher)

		emergency := api.Group("/emergency")
		emergency.GET("", h.GetEmergencyServices)
		emergency.GET("/:id", h.GetEmergencyServiceByID)

		api.POST("/calculate-fuel", h.CalculateFuel)
	}

	return r
}
