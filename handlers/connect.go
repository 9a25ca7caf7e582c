package handlers

import (
	"errors"
	"net/http"

	"latewiz/services/connect"

	"github.com/gin-gonic/gin"
)

// ConnectHandler serves the OAuth callback flow.
type ConnectHandler struct {
	Service connect.ConnectService
}

func NewConnectHandler(service connect.ConnectService) *ConnectHandler {
	return &ConnectHandler{Service: service}
}

// CallbackHandler receives the query parameters the provider redirected
// back with and opens a connection attempt. The response carries the
// attempt in whatever state the flow reached: success (with its
// scheduled redirect), select_entity (with the candidate list) or error.
func (h *ConnectHandler) CallbackHandler(c *gin.Context) {
	attempt, err := h.Service.Begin(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, err, connect.MsgProcessingFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt": attempt})
}

// GetAttemptHandler returns an attempt's current state.
func (h *ConnectHandler) GetAttemptHandler(c *gin.Context) {
	attempt, err := h.Service.GetAttempt(c.Request.Context(), c.Param("attemptID"))
	if err != nil {
		if errors.Is(err, connect.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Connection attempt not found"})
			return
		}
		respondError(c, err, "Failed to load connection attempt")
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt": attempt})
}

// SelectEntityHandler finalizes the user's entity choice.
func (h *ConnectHandler) SelectEntityHandler(c *gin.Context) {
	var req struct {
		EntityID string `json:"entityId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing entity id"})
		return
	}

	attempt, err := h.Service.Select(c.Request.Context(), c.Param("attemptID"), req.EntityID)
	if err != nil {
		if errors.Is(err, connect.ErrAttemptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Connection attempt not found"})
			return
		}
		respondError(c, err, connect.MsgFinalizeFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt": attempt})
}
