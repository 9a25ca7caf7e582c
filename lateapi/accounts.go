package lateapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"latewiz/models"
)

// ListAccounts fetches the connected accounts for a profile.
func (c *Client) ListAccounts(ctx context.Context, profileID string) (*models.AccountListResponse, error) {
	query := url.Values{}
	if profileID != "" {
		query.Set("profileId", profileID)
	}
	var out models.AccountListResponse
	if err := c.do(ctx, http.MethodGet, "/accounts", query, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountsHealth fetches per-account credential health for a profile.
func (c *Client) AccountsHealth(ctx context.Context, profileID string) (json.RawMessage, error) {
	query := url.Values{}
	if profileID != "" {
		query.Set("profileId", profileID)
	}
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/accounts/health", query, nil, nil, &out)
	return out, err
}

// DeleteAccount disconnects an account.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodDelete, "/accounts/"+accountID, nil, nil, nil, &out)
	return out, err
}
