// utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes a single-message error body: {"error": message}.
// Used for 404s and 500s.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondWithFieldErrors writes a 400 with the field-level problem list:
// {"errors": [{"field": ..., "message": ...}, ...]}.
func RespondWithFieldErrors(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// RespondWithValidationErrors translates a binding error into field errors
// and writes the 400.
func RespondWithValidationErrors(c *gin.Context, err error) {
	RespondWithFieldErrors(c, ValidationMessages(err))
}
