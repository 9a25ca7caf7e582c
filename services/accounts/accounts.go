// Package accounts forwards connected-account operations to the provider.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"latewiz/lateapi"
	"latewiz/models"
	"latewiz/utils"

	"go.uber.org/zap"
)

const resourceAccounts = "accounts"

// AccountService lists, health-checks and disconnects accounts, and
// hands out connect URLs for linking new ones.
type AccountService interface {
	List(ctx context.Context, profileID string) (*models.AccountListResponse, error)
	Health(ctx context.Context, profileID string) (json.RawMessage, error)
	Delete(ctx context.Context, accountID string) (json.RawMessage, error)
	ConnectURL(ctx context.Context, platform models.Platform, profileID, redirectURL string) (json.RawMessage, error)
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	API   *lateapi.Client
	Cache utils.ResourceCache
}

func (s *DefaultAccountService) List(ctx context.Context, profileID string) (*models.AccountListResponse, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}

	var cached models.AccountListResponse
	if hit, err := s.Cache.Get(ctx, resourceAccounts, profileID, &cached); err == nil && hit {
		return &cached, nil
	}

	resp, err := s.API.ListAccounts(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	if err := s.Cache.Set(ctx, resourceAccounts, profileID, resp); err != nil {
		utils.GetLogger().Warn("Failed to cache accounts", zap.Error(err))
	}
	return resp, nil
}

func (s *DefaultAccountService) Health(ctx context.Context, profileID string) (json.RawMessage, error) {
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	// Health is deliberately not cached: a stale "healthy" is worse
	// than the extra round trip.
	return s.API.AccountsHealth(ctx, profileID)
}

func (s *DefaultAccountService) Delete(ctx context.Context, accountID string) (json.RawMessage, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account id is required")
	}
	out, err := s.API.DeleteAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}
	if err := s.Cache.InvalidateResource(ctx, resourceAccounts); err != nil {
		utils.GetLogger().Warn("Failed to invalidate accounts cache", zap.Error(err))
	}
	return out, nil
}

func (s *DefaultAccountService) ConnectURL(ctx context.Context, platform models.Platform, profileID, redirectURL string) (json.RawMessage, error) {
	if !platform.IsValid() {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
	if profileID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	return s.API.ConnectURL(ctx, platform, profileID, redirectURL)
}
