package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"born2ride/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload", err)
		return false
	}
	return true
}

// IDParamOrError parses the :id path segment.
func IDParamOrError(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
