package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"latewiz/config"
	"latewiz/lateapi"
	"latewiz/models"
	"latewiz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidKey means the presented dashboard key did not match.
var ErrInvalidKey = errors.New("invalid dashboard key")

// ErrKeyNotConfigured means the operator never set a provider API key.
var ErrKeyNotConfigured = errors.New("provider API key not configured")

// AuthService gates the dashboard: it verifies the operator-set access
// key, proves the provider API key works, and manages sessions.
type AuthService interface {
	Login(ctx context.Context, dashboardKey string) (string, *models.UsageStats, error)
	Check(ctx context.Context) (*models.UsageStats, error)
	Session(ctx context.Context, sessionID string) (*models.Session, error)
	SetDefaultProfile(ctx context.Context, sessionID, profileID string) (*models.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	API      *lateapi.Client
	Sessions SessionStore
}

// Login verifies the dashboard key, validates the provider key via the
// usage endpoint, and mints a session token.
func (s *DefaultAuthService) Login(ctx context.Context, dashboardKey string) (string, *models.UsageStats, error) {
	if err := verifyDashboardKey(dashboardKey); err != nil {
		return "", nil, err
	}

	stats, err := s.Check(ctx)
	if err != nil {
		return "", nil, err
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return "", nil, err
	}

	ttl := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	token, err := utils.GenerateSessionToken(session.ID, ttl)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	utils.GetLogger().Info("Dashboard session opened", zap.String("sessionId", session.ID))
	return token, stats, nil
}

// Check confirms the provider API key is configured and accepted.
func (s *DefaultAuthService) Check(ctx context.Context) (*models.UsageStats, error) {
	if config.AppConfig.ProviderAPIKey == "" {
		return nil, ErrKeyNotConfigured
	}
	stats, err := s.API.UsageStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("provider key validation failed: %w", err)
	}
	return stats, nil
}

// Session resolves a session id to its session object.
func (s *DefaultAuthService) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// SetDefaultProfile records which profile the session's requests target
// by default.
func (s *DefaultAuthService) SetDefaultProfile(ctx context.Context, sessionID, profileID string) (*models.Session, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.DefaultProfileID = profileID
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout drops the session.
func (s *DefaultAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// verifyDashboardKey checks the presented key against config: a bcrypt
// hash when one is set, otherwise a constant-time comparison against the
// plaintext key.
func verifyDashboardKey(presented string) error {
	cfg := config.AppConfig
	if cfg.DashboardKeyHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.DashboardKeyHash), []byte(presented)); err != nil {
			return ErrInvalidKey
		}
		return nil
	}
	if cfg.DashboardKey == "" {
		return fmt.Errorf("dashboard key not configured")
	}
	if subtle.ConstantTimeCompare([]byte(cfg.DashboardKey), []byte(presented)) != 1 {
		return ErrInvalidKey
	}
	return nil
}
