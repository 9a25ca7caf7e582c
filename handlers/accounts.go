package handlers

import (
	"net/http"

	"latewiz/middleware"
	"latewiz/models"
	"latewiz/services/accounts"

	"github.com/gin-gonic/gin"
)

// AccountsHandler serves connected-account endpoints.
type AccountsHandler struct {
	Service accounts.AccountService
}

func NewAccountsHandler(service accounts.AccountService) *AccountsHandler {
	return &AccountsHandler{Service: service}
}

// ListAccountsHandler lists the profile's connected accounts.
func (h *AccountsHandler) ListAccountsHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	profileID := session.ProfileID(c.Query("profileId"))
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	resp, err := h.Service.List(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err, "Failed to fetch accounts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AccountsHealthHandler reports per-account credential health.
func (h *AccountsHandler) AccountsHealthHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	profileID := session.ProfileID(c.Query("profileId"))
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	out, err := h.Service.Health(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, err, "Failed to fetch accounts health")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// DeleteAccountHandler disconnects an account.
func (h *AccountsHandler) DeleteAccountHandler(c *gin.Context) {
	accountID := c.Param("accountID")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing account id"})
		return
	}

	out, err := h.Service.Delete(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// ConnectURLHandler hands out the provider-hosted OAuth URL for linking
// a new account on the given platform.
func (h *AccountsHandler) ConnectURLHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	platform := models.Platform(c.Param("platform"))
	profileID := session.ProfileID(c.Query("profileId"))
	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	out, err := h.Service.ConnectURL(c.Request.Context(), platform, profileID, c.Query("redirect_url"))
	if err != nil {
		respondError(c, err, "Failed to get connect URL")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}
