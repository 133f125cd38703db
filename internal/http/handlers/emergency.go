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

// GET /api/emergency?type=
func GetEmergencyServices(c *gin.Context) {
	var filter models.EmergencyFilter

	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		t, ok := domain.ParseServiceType(raw)
		if !ok {
			RespondDomainError(c, domain.ValidationError{Field: "type", Msg: "must be one of: police, hospital, ambulance, fire, roadside"})
			return
		}
		filter.Type = &t
	}

	out, err := repositories.EmergencyRepository{}.List(filter)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/emergency/:id
func GetEmergencyServiceByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	svc, err := repositories.EmergencyRepository{}.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		RespondDomainError(c, domain.NotFoundError{Resource: "emergency service", Err: err})
		return
	}
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, svc)
}
