package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Princessdada/Blogging-API/internal/domain"
)

// respondError translates a service error into an HTTP status and a JSON
// body. Unrecognized errors become a generic 500 so internal detail never
// reaches the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrDuplicateEmail.Error()})
	case errors.Is(err, domain.ErrDuplicateTitle):
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrDuplicateTitle.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidCredentials.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
