package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pantrychef/internal/apperr"
)

// respondError is the only place a command or service failure becomes a
// status code. Conflicts map to 400 alongside invalid input, matching
// the external contract for duplicate creates; upstream failures also
// surface as 400 with their descriptive message rather than being
// silently defaulted.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument),
		errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrUpstreamUnavailable),
		errors.Is(err, apperr.ErrBadUpstreamResponse):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("internal error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
