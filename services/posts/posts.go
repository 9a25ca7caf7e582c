// Package posts forwards post operations to the provider.
package posts

import (
	"context"
	"encoding/json"
	"fmt"

	"latewiz/lateapi"
	"latewiz/models"
	"latewiz/utils"

	"go.uber.org/zap"
)

const resourcePosts = "posts"

// PostService covers the compose/calendar surface: CRUD plus retrying a
// failed publish.
type PostService interface {
	List(ctx context.Context, filters models.PostFilters) (json.RawMessage, error)
	Get(ctx context.Context, postID string) (json.RawMessage, error)
	Create(ctx context.Context, req models.CreatePostRequest) (json.RawMessage, error)
	Update(ctx context.Context, postID string, req models.UpdatePostRequest) (json.RawMessage, error)
	Delete(ctx context.Context, postID string) (json.RawMessage, error)
	Retry(ctx context.Context, postID string) (json.RawMessage, error)
}

// DefaultPostService is the production implementation.
type DefaultPostService struct {
	API   *lateapi.Client
	Cache utils.ResourceCache
}

func (s *DefaultPostService) List(ctx context.Context, filters models.PostFilters) (json.RawMessage, error) {
	if filters.ProfileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	return s.API.ListPosts(ctx, filters)
}

func (s *DefaultPostService) Get(ctx context.Context, postID string) (json.RawMessage, error) {
	if postID == "" {
		return nil, fmt.Errorf("post id is required")
	}

	var cached json.RawMessage
	if hit, err := s.Cache.Get(ctx, resourcePosts, postID, &cached); err == nil && hit {
		return cached, nil
	}

	out, err := s.API.GetPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	if err := s.Cache.Set(ctx, resourcePosts, postID, out); err != nil {
		utils.GetLogger().Warn("Failed to cache post", zap.Error(err))
	}
	return out, nil
}

func (s *DefaultPostService) Create(ctx context.Context, req models.CreatePostRequest) (json.RawMessage, error) {
	if len(req.Platforms) == 0 {
		return nil, fmt.Errorf("at least one platform target is required")
	}
	out, err := s.API.CreatePost(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	s.invalidate(ctx, "")
	return out, nil
}

func (s *DefaultPostService) Update(ctx context.Context, postID string, req models.UpdatePostRequest) (json.RawMessage, error) {
	if postID == "" {
		return nil, fmt.Errorf("post id is required")
	}
	out, err := s.API.UpdatePost(ctx, postID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	s.invalidate(ctx, postID)
	return out, nil
}

func (s *DefaultPostService) Delete(ctx context.Context, postID string) (json.RawMessage, error) {
	if postID == "" {
		return nil, fmt.Errorf("post id is required")
	}
	out, err := s.API.DeletePost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}
	s.invalidate(ctx, postID)
	return out, nil
}

func (s *DefaultPostService) Retry(ctx context.Context, postID string) (json.RawMessage, error) {
	if postID == "" {
		return nil, fmt.Errorf("post id is required")
	}
	out, err := s.API.RetryPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to retry post: %w", err)
	}
	s.invalidate(ctx, postID)
	return out, nil
}

func (s *DefaultPostService) invalidate(ctx context.Context, postID string) {
	logger := utils.GetLogger()
	if postID != "" {
		if err := s.Cache.Invalidate(ctx, resourcePosts, postID); err != nil {
			logger.Warn("Failed to invalidate post cache", zap.Error(err))
		}
		return
	}
	if err := s.Cache.InvalidateResource(ctx, resourcePosts); err != nil {
		logger.Warn("Failed to invalidate post cache", zap.Error(err))
	}
}
