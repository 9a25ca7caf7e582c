// Package media forwards presigned-upload requests to the provider. The
// browser uploads directly to the returned URL; file bytes never pass
// through this server.
package media

import (
	"context"
	"fmt"
	"strings"

	"latewiz/lateapi"
	"latewiz/models"
)

// MediaService hands out presigned upload URLs.
type MediaService interface {
	Presign(ctx context.Context, req models.PresignRequest) (*models.PresignResponse, error)
}

// DefaultMediaService is the production implementation.
type DefaultMediaService struct {
	API *lateapi.Client
}

func (s *DefaultMediaService) Presign(ctx context.Context, req models.PresignRequest) (*models.PresignResponse, error) {
	if req.Filename == "" || req.ContentType == "" {
		return nil, fmt.Errorf("filename and contentType are required")
	}
	if !strings.HasPrefix(req.ContentType, "image/") && !strings.HasPrefix(req.ContentType, "video/") {
		return nil, fmt.Errorf("unsupported content type %q", req.ContentType)
	}
	return s.API.PresignUpload(ctx, req)
}
