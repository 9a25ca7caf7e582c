package handlers

import (
	"errors"
	"net/http"

	"latewiz/middleware"
	"latewiz/services/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the dashboard access gate.
type AuthHandler struct {
	Service auth.AuthService
}

func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// LoginHandler verifies the dashboard key and opens a session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing dashboard key"})
		return
	}

	token, stats, err := h.Service.Login(c.Request.Context(), req.Key)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidKey) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid dashboard key"})
			return
		}
		if errors.Is(err, auth.ErrKeyNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"configured": false,
				"error":      "Provider API key not configured. Please set PROVIDER_API_KEY.",
			})
			return
		}
		respondError(c, err, "Failed to open session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "usage": stats})
}

// CheckHandler reports whether the provider key is configured and valid.
func (h *AuthHandler) CheckHandler(c *gin.Context) {
	stats, err := h.Service.Check(c.Request.Context())
	if err != nil {
		if errors.Is(err, auth.ErrKeyNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"configured": false,
				"error":      "Provider API key not configured. Please set PROVIDER_API_KEY.",
			})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"configured": false,
			"error":      "Invalid provider API key configuration.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": true, "data": stats})
}

// SetDefaultProfileHandler records the session's default profile.
func (h *AuthHandler) SetDefaultProfileHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req struct {
		ProfileID string `json:"profileId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	updated, err := h.Service.SetDefaultProfile(c.Request.Context(), session.ID, req.ProfileID)
	if err != nil {
		respondError(c, err, "Failed to update session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": updated})
}

// LogoutHandler closes the session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}
	if err := h.Service.Logout(c.Request.Context(), session.ID); err != nil {
		respondError(c, err, "Failed to close session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
