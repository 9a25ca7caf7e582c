package handlers

import (
	"net/http"

	"latewiz/models"
	"latewiz/services/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler serves media upload endpoints.
type MediaHandler struct {
	Service media.MediaService
}

func NewMediaHandler(service media.MediaService) *MediaHandler {
	return &MediaHandler{Service: service}
}

// PresignHandler asks the provider for a direct-upload URL.
func (h *MediaHandler) PresignHandler(c *gin.Context) {
	var req models.PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presign payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.Presign(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to get presigned URL")
		return
	}
	c.JSON(http.StatusOK, resp)
}
