package lateapi

import (
	"context"
	"encoding/json"
	"net/http"

	"latewiz/models"
)

// ListProfiles fetches every workspace profile.
func (c *Client) ListProfiles(ctx context.Context) (*models.ProfileListResponse, error) {
	var out models.ProfileListResponse
	if err := c.do(ctx, http.MethodGet, "/profiles", nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches one profile.
func (c *Client) GetProfile(ctx context.Context, profileID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/profiles/"+profileID, nil, nil, nil, &out)
	return out, err
}

// CreateProfile creates a profile.
func (c *Client) CreateProfile(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/profiles", nil, nil, profile, &out)
	return out, err
}

// UpdateProfile edits a profile.
func (c *Client) UpdateProfile(ctx context.Context, profileID string, profile models.Profile) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPatch, "/profiles/"+profileID, nil, nil, profile, &out)
	return out, err
}

// DeleteProfile removes a profile.
func (c *Client) DeleteProfile(ctx context.Context, profileID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodDelete, "/profiles/"+profileID, nil, nil, nil, &out)
	return out, err
}
