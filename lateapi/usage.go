package lateapi

import (
	"context"
	"net/http"

	"latewiz/models"
)

// UsageStats fetches the account's plan usage. A successful call also
// proves the configured API key is valid.
func (c *Client) UsageStats(ctx context.Context) (*models.UsageStats, error) {
	var out models.UsageStats
	if err := c.do(ctx, http.MethodGet, "/usage", nil, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
