// Package handlers holds the gin handlers for every dashboard endpoint.
package handlers

import (
	"errors"
	"net/http"

	"latewiz/lateapi"
	"latewiz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service failure onto the wire: provider-reported
// errors come back as 400 with the provider's message, everything else
// collapses to a 500 with the caller's fallback message. The underlying
// cause is logged, not shown.
func respondError(c *gin.Context, err error, fallback string) {
	logger := utils.GetLogger()

	var perr *lateapi.ProviderError
	if errors.As(err, &perr) {
		logger.Warn(fallback, zap.Int("providerStatus", perr.StatusCode), zap.String("providerMessage", perr.Message))
		c.JSON(http.StatusBadRequest, gin.H{"error": perr.Message})
		return
	}

	logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
