package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"born2ride/internal/domain"
	"born2ride/internal/domain/models"
	"born2ride/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/vendors?type=&is_open=&source=
func GetVendors(c *gin.Context) {
	var filter models.VendorFilter

	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		t, ok := domain.ParseVendorType(raw)
		if !ok {
			RespondDomainError(c, domain.ValidationError{Field: "type", Msg: "must be one of: food, hotel, workshop"})
			return
		}
		filter.Type = &t
	}
	if raw := strings.TrimSpace(c.Query("is_open")); raw != "" {
		open := strings.EqualFold(raw, "true")
		filter.IsOpen = &open
	}
	if raw := strings.TrimSpace(c.Query("source")); raw != "" {
		s, ok := domain.ParseVendorSource(raw)
		if !ok {
			RespondDomainError(c, domain.ValidationError{Field: "source", Msg: "unknown listing source"})
			return
		}
		filter.Source = &s
	}

	vendors, err := repositories.VendorRepository{}.List(filter)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// GET /api/vendors/:id
func GetVendorByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	vendor, err := repositories.VendorRepository{}.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, domain.NotFoundError{Resource: "vendor", Err: err})
		return
	}
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, vendor)
}
