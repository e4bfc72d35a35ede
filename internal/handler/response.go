package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel/internal/domain"
	"travel/internal/repository"
	"travel/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
// Internal errors are logged by the request logger and not echoed to the client.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	_ = c.Error(err)
	if code == http.StatusInternalServerError {
		c.JSON(code, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownRoomType),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidPageID),
		errors.Is(err, service.ErrInvalidSubmissionID),
		errors.Is(err, service.ErrInvalidVisitorID),
		errors.Is(err, service.ErrNoFiles):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrTripComingSoon):
		return http.StatusConflict

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized

	// Upstream failures
	case errors.Is(err, service.ErrAllUploadsFailed):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
