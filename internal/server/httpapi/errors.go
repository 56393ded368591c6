package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/acquisitions/internal/common"
)

const (
	msgValidationFailed   = "Validation failed"
	msgMalformedBody      = "request body is malformed"
	msgEmailTaken         = "Email already exist"
	msgInvalidCredentials = "Invalid email or password"
	msgUnauthorized       = "Authentication required"
	msgInternal           = "Internal server error"
)

// writeError maps an engine error to its status code and a body that never
// carries the underlying cause.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": msgEmailTaken})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
	case errors.Is(err, common.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
	default:
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

func writeValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msgValidationFailed, "details": details})
}
