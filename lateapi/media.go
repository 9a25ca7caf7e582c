package lateapi

import (
	"context"
	"net/http"

	"latewiz/models"
)

// PresignUpload asks the provider for a direct media upload URL.
func (c *Client) PresignUpload(ctx context.Context, req models.PresignRequest) (*models.PresignResponse, error) {
	var out models.PresignResponse
	if err := c.do(ctx, http.MethodPost, "/media/presign", nil, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
