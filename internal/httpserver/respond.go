package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"editorial-cms/internal/domain"
)

// writeError maps the domain error taxonomy onto HTTP status codes. Callers
// branch on error kind, never on message text.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidPayload):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
