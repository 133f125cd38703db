package handlers

import (
	"net/http"

	"born2ride/internal/domain"
	"born2ride/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	payload := gin.H{
		"error":   message,
		"message": message,
		"code":    code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. A fully booked
// hotel answers 400, not 409; clients treat it as a bad booking request.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusBadRequest, "capacity_conflict", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
