package handlers

import (
	"net/http"
	"time"

	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
	"born2ride/internal/http/middleware"
	"born2ride/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingPayload struct {
	Vendor       int64      `json:"vendor" binding:"required"`
	CustomerName string     `json:"customer_name" binding:"required"`
	Phone        string     `json:"phone" binding:"required"`
	CheckIn      *time.Time `json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	TotalPrice   *float64   `json:"total_price" binding:"required"`
	Status       string     `json:"status"`
}

type bookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/bookings — 404 when the vendor is missing, 400 when a hotel has
// no rooms left.
func CreateBooking(c *gin.Context) {
	var p bookingPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	status := domain.BookingPending
	if p.Status != "" {
		parsed, ok := domain.ParseBookingStatus(p.Status)
		if !ok {
			RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "must be one of: pending, confirmed, cancelled"})
			return
		}
		status = parsed
	}

	booking, err := bookingService(c).Create(models.BookingRequest{
		VendorID:     p.Vendor,
		CustomerName: p.CustomerName,
		Phone:        p.Phone,
		CheckIn:      p.CheckIn,
		CheckOut:     p.CheckOut,
		TotalPrice:   *p.TotalPrice,
		Status:       status,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	out, err := bookingService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	booking, err := bookingService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// PUT /api/bookings/:id — status changes only; cancelling does not restore
// room counts.
func UpdateBookingStatus(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var p bookingStatusPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	status, valid := domain.ParseBookingStatus(p.Status)
	if !valid {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "must be one of: pending, confirmed, cancelled"})
		return
	}
	booking, err := bookingService(c).UpdateStatus(id, status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := bookingService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/bookings/:id/voucher
func GetBookingVoucher(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	docs := services.DocsService{
		BookingSvc: bookingService(c),
		RequestID:  middleware.GetRequestID(c),
	}
	pdf, filename, err := docs.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
