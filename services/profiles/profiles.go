// Package profiles forwards workspace-profile operations to the provider.
package profiles

import (
	"context"
	"encoding/json"
	"fmt"

	"latewiz/lateapi"
	"latewiz/models"
	"latewiz/utils"

	"go.uber.org/zap"
)

const resourceProfiles = "profiles"

// ProfileService covers workspace profile CRUD.
type ProfileService interface {
	List(ctx context.Context) (*models.ProfileListResponse, error)
	Get(ctx context.Context, profileID string) (json.RawMessage, error)
	Create(ctx context.Context, profile models.Profile) (json.RawMessage, error)
	Update(ctx context.Context, profileID string, profile models.Profile) (json.RawMessage, error)
	Delete(ctx context.Context, profileID string) (json.RawMessage, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	API   *lateapi.Client
	Cache utils.ResourceCache
}

func (s *DefaultProfileService) List(ctx context.Context) (*models.ProfileListResponse, error) {
	var cached models.ProfileListResponse
	if hit, err := s.Cache.Get(ctx, resourceProfiles, "all", &cached); err == nil && hit {
		return &cached, nil
	}

	resp, err := s.API.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	if err := s.Cache.Set(ctx, resourceProfiles, "all", resp); err != nil {
		utils.GetLogger().Warn("Failed to cache profiles", zap.Error(err))
	}
	return resp, nil
}

func (s *DefaultProfileService) Get(ctx context.Context, profileID string) (json.RawMessage, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	return s.API.GetProfile(ctx, profileID)
}

func (s *DefaultProfileService) Create(ctx context.Context, profile models.Profile) (json.RawMessage, error) {
	if profile.Name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	out, err := s.API.CreateProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *DefaultProfileService) Update(ctx context.Context, profileID string, profile models.Profile) (json.RawMessage, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	out, err := s.API.UpdateProfile(ctx, profileID, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *DefaultProfileService) Delete(ctx context.Context, profileID string) (json.RawMessage, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	out, err := s.API.DeleteProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete profile: %w", err)
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *DefaultProfileService) invalidate(ctx context.Context) {
	if err := s.Cache.InvalidateResource(ctx, resourceProfiles); err != nil {
		utils.GetLogger().Warn("Failed to invalidate profile cache", zap.Error(err))
	}
}
