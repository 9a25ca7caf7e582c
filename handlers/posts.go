package handlers

import (
	"net/http"
	"strconv"

	"latewiz/middleware"
	"latewiz/models"
	"latewiz/services/posts"

	"github.com/gin-gonic/gin"
)

// PostsHandler serves the compose and calendar endpoints.
type PostsHandler struct {
	Service posts.PostService
}

func NewPostsHandler(service posts.PostService) *PostsHandler {
	return &PostsHandler{Service: service}
}

// ListPostsHandler lists posts with optional status and date filters.
func (h *PostsHandler) ListPostsHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	filters := models.PostFilters{
		ProfileID: session.ProfileID(c.Query("profileId")),
		Status:    c.Query("status"),
		DateFrom:  c.Query("dateFrom"),
		DateTo:    c.Query("dateTo"),
		Page:      page,
		Limit:     limit,
	}
	if filters.ProfileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile id"})
		return
	}

	out, err := h.Service.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err, "Failed to fetch posts")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// GetPostHandler returns one post.
func (h *PostsHandler) GetPostHandler(c *gin.Context) {
	out, err := h.Service.Get(c.Request.Context(), c.Param("postID"))
	if err != nil {
		respondError(c, err, "Failed to fetch post")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// CreatePostHandler schedules or publishes a post.
func (h *PostsHandler) CreatePostHandler(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post payload", "message": err.Error()})
		return
	}

	out, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create post")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// UpdatePostHandler edits a post.
func (h *PostsHandler) UpdatePostHandler(c *gin.Context) {
	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post payload", "message": err.Error()})
		return
	}

	out, err := h.Service.Update(c.Request.Context(), c.Param("postID"), req)
	if err != nil {
		respondError(c, err, "Failed to update post")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// DeletePostHandler removes a post.
func (h *PostsHandler) DeletePostHandler(c *gin.Context) {
	out, err := h.Service.Delete(c.Request.Context(), c.Param("postID"))
	if err != nil {
		respondError(c, err, "Failed to delete post")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// RetryPostHandler re-attempts publishing a failed post.
func (h *PostsHandler) RetryPostHandler(c *gin.Context) {
	out, err := h.Service.Retry(c.Request.Context(), c.Param("postID"))
	if err != nil {
		respondError(c, err, "Failed to retry post")
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}
