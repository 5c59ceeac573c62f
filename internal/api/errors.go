package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookify-backend-go/internal/core"
)

// respondError is the single mapping from core error kinds to HTTP status
// codes and the {detail} envelope. Keeping this in one place means every
// handler reports authorization and validation failures identically.
func respondError(c *gin.Context, err error) {
	var statusCode int
	var detail string

	var validationErr *core.ValidationError
	switch {
	case errors.Is(err, core.ErrAuthRequired):
		statusCode = http.StatusUnauthorized
		detail = "Authentication required"
	case errors.Is(err, core.ErrAdminRequired):
		statusCode = http.StatusForbidden
		detail = "Admin privileges required"
	case errors.Is(err, core.ErrForbidden):
		statusCode = http.StatusForbidden
		detail = "Forbidden"
	case errors.Is(err, core.ErrServiceNotFound),
		errors.Is(err, core.ErrCategoryNotFound),
		errors.Is(err, core.ErrBookingNotFound),
		errors.Is(err, core.ErrProfileNotFound):
		statusCode = http.StatusNotFound
		detail = "Not found"
	case errors.As(err, &validationErr):
		statusCode = http.StatusBadRequest
		detail = validationErr.Detail
	default:
		// Upstream failure (document store or identity provider). Log the
		// real error server-side, keep the response generic.
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		detail = "An unexpected internal server error occurred"
	}

	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// callerID returns the authenticated caller's UID from the gin context, or
// the empty string for unauthenticated requests. The policy gate treats an
// empty ID as "no caller", so handlers can pass it straight through.
func callerID(c *gin.Context) string {
	if uid, ok := c.Get("userID"); ok {
		if s, ok := uid.(string); ok {
			return s
		}
	}
	return ""
}

// callerEmail returns the verified email claim from the gin context, if any.
func callerEmail(c *gin.Context) string {
	if email, ok := c.Get("userEmail"); ok {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}
