package lateapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"latewiz/models"
)

// ListPosts fetches posts matching the given filters. A zero limit
// defaults to 50.
func (c *Client) ListPosts(ctx context.Context, filters models.PostFilters) (json.RawMessage, error) {
	query := url.Values{}
	if filters.ProfileID != "" {
		query.Set("profileId", filters.ProfileID)
	}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.DateFrom != "" {
		query.Set("dateFrom", filters.DateFrom)
	}
	if filters.DateTo != "" {
		query.Set("dateTo", filters.DateTo)
	}
	if filters.Page > 0 {
		query.Set("page", strconv.Itoa(filters.Page))
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	query.Set("limit", strconv.Itoa(limit))

	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/posts", query, nil, nil, &out)
	return out, err
}

// GetPost fetches one post.
func (c *Client) GetPost(ctx context.Context, postID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/posts/"+postID, nil, nil, nil, &out)
	return out, err
}

// CreatePost schedules or publishes a post.
func (c *Client) CreatePost(ctx context.Context, req models.CreatePostRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/posts", nil, nil, req, &out)
	return out, err
}

// UpdatePost edits an existing post.
func (c *Client) UpdatePost(ctx context.Context, postID string, req models.UpdatePostRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPatch, "/posts/"+postID, nil, nil, req, &out)
	return out, err
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodDelete, "/posts/"+postID, nil, nil, nil, &out)
	return out, err
}

// RetryPost re-attempts publishing a failed post.
func (c *Client) RetryPost(ctx context.Context, postID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/posts/"+postID+"/retry", nil, nil, nil, &out)
	return out, err
}
