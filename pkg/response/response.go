package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ParthMistry57/Blog-application/internal/application"
)

// JSON writes a success payload as-is. Payload shapes follow the public
// API contract, so handlers pass gin.H or typed views directly.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Message writes a bare {"message": ...} body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ValidationError writes a 400 with field-level details.
func ValidationError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "errors": details})
}

// Err maps a service error onto the taxonomy and writes {"message": ...}.
// Unclassified errors become 500 with a generic message; the cause is the
// caller's to log, never the client's to see.
func Err(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, application.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
