package handlers

import (
	"net/http"

	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"organization not found"`
	Kind  string `json:"kind" example:"not_found"`
}

// statusForKind maps an error kind to its HTTP status
func statusForKind(kind string) int {
	switch kind {
	case "not_found":
		return http.StatusNotFound
	case "conflict":
		return http.StatusConflict
	case "validation_error":
		return http.StatusBadRequest
	case "unauthorized":
		return http.StatusUnauthorized
	case "forbidden":
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error","kind"}. Internal failures are logged and their detail is not exposed.
func respondError(c *gin.Context, err error) {
	kind := apperrors.Kind(err)
	status := statusForKind(kind)
	message := err.Error()

	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("request failed")
		message = "internal server error"
	}
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, Kind: kind})
}

// respondBadRequest reports a request that could not be parsed
func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message, Kind: "validation_error"})
}
