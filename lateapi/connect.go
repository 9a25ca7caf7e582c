package lateapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"latewiz/models"
)

// ConnectTokenHeader carries the short-lived connect token on entity
// lookup calls.
const ConnectTokenHeader = "X-Connect-Token"

// ConnectURL asks the provider for the OAuth URL that starts linking a
// new account on the given platform.
func (c *Client) ConnectURL(ctx context.Context, platform models.Platform, profileID, redirectURL string) (json.RawMessage, error) {
	query := url.Values{"headless": {"true"}}
	if profileID != "" {
		query.Set("profileId", profileID)
	}
	if redirectURL != "" {
		query.Set("redirect_url", redirectURL)
	}
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/connect/"+string(platform), query, nil, nil, &out)
	return out, err
}

// ListFacebookPages fetches the pages selectable for a pending Facebook
// connection. The connect token travels as a header.
func (c *Client) ListFacebookPages(ctx context.Context, connectToken string) (*models.FacebookPagesResponse, error) {
	headers := http.Header{ConnectTokenHeader: {connectToken}}
	var out models.FacebookPagesResponse
	if err := c.do(ctx, http.MethodGet, "/connect/facebook/pages", nil, headers, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingOAuthData exchanges a LinkedIn pending-data token for the
// organizations selectable for that connection.
func (c *Client) PendingOAuthData(ctx context.Context, pendingDataToken string) (*models.LinkedInOrganizationsResponse, error) {
	query := url.Values{"token": {pendingDataToken}}
	var out models.LinkedInOrganizationsResponse
	if err := c.do(ctx, http.MethodGet, "/connect/pending", query, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPinterestBoards fetches the boards selectable for a pending
// Pinterest connection.
func (c *Client) ListPinterestBoards(ctx context.Context, tempToken, connectToken string) (*models.PinterestBoardsResponse, error) {
	query := url.Values{"tempToken": {tempToken}}
	headers := http.Header{ConnectTokenHeader: {connectToken}}
	var out models.PinterestBoardsResponse
	if err := c.do(ctx, http.MethodGet, "/connect/pinterest/boards", query, headers, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGoogleBusinessLocations fetches the locations selectable for a
// pending Google Business connection.
func (c *Client) ListGoogleBusinessLocations(ctx context.Context, tempToken, connectToken string) (*models.GoogleBusinessLocationsResponse, error) {
	query := url.Values{"tempToken": {tempToken}}
	headers := http.Header{ConnectTokenHeader: {connectToken}}
	var out models.GoogleBusinessLocationsResponse
	if err := c.do(ctx, http.MethodGet, "/connect/googlebusiness/locations", query, headers, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SelectFacebookPage finalizes a Facebook connection with the chosen page.
func (c *Client) SelectFacebookPage(ctx context.Context, req models.SelectEntityRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/connect/facebook/pages", nil, nil, req, &out)
	return out, err
}

// SelectLinkedInOrganization finalizes a LinkedIn connection with the
// chosen organization.
func (c *Client) SelectLinkedInOrganization(ctx context.Context, req models.SelectEntityRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/connect/linkedin/organizations", nil, nil, req, &out)
	return out, err
}

// SelectPinterestBoard finalizes a Pinterest connection with the chosen board.
func (c *Client) SelectPinterestBoard(ctx context.Context, req models.SelectEntityRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/connect/pinterest/boards", nil, nil, req, &out)
	return out, err
}

// SelectGoogleBusinessLocation finalizes a Google Business connection
// with the chosen location.
func (c *Client) SelectGoogleBusinessLocation(ctx context.Context, req models.SelectEntityRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/connect/googlebusiness/locations", nil, nil, req, &out)
	return out, err
}
