package handlers

import (
	"net/http"

	"latewiz/models"
	"latewiz/services/profiles"

	"github.com/gin-gonic/gin"
)

// ProfilesHandler serves workspace-profile endpoints.
type ProfilesHandler struct {
	Service profiles.ProfileService
}

func NewProfilesHandler(service profiles.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{Service: service}
}

// ListProfilesHandler lists every workspace profile.
func (h *ProfilesHandler) ListProfilesHandler(c *gin.Context) {
	resp, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch profiles")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns one profile.
func (h *ProfilesHandler) GetProfileHandler(c *gin.Context) {
	out, err := h.Service.Get(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		respondError(c, err, "Failed to fetch profile")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// CreateProfileHandler creates a profile.
func (h *ProfilesHandler) CreateProfileHandler(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile payload", "message": err.Error()})
		return
	}

	out, err := h.Service.Create(c.Request.Context(), profile)
	if err != nil {
		respondError(c, err, "Failed to create profile")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// UpdateProfileHandler edits a profile.
func (h *ProfilesHandler) UpdateProfileHandler(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile payload", "message": err.Error()})
		return
	}

	out, err := h.Service.Update(c.Request.Context(), c.Param("profileID"), profile)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// DeleteProfileHandler removes a profile.
func (h *ProfilesHandler) DeleteProfileHandler(c *gin.Context) {
	out, err := h.Service.Delete(c.Request.Context(), c.Param("profileID"))
	if err != nil {
		respondError(c, err, "Failed to delete profile")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}
