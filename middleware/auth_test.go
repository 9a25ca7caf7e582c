package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"latewiz/models"
	"latewiz/services/auth"
	"latewiz/utils"

	"github.com/gin-gonic/gin"
)

// fakeAuthService resolves sessions from a fixed map.
type fakeAuthService struct {
	sessions map[string]*models.Session
}

func (f *fakeAuthService) Login(context.Context, string) (string, *models.UsageStats, error) {
	return "", nil, nil
}

func (f *fakeAuthService) Check(context.Context) (*models.UsageStats, error) { return nil, nil }

func (f *fakeAuthService) Session(_ context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeAuthService) SetDefaultProfile(context.Context, string, string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeAuthService) Logout(context.Context, string) error { return nil }

func TestSessionAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	session := &models.Session{ID: "sess-1", DefaultProfileID: "prof-1"}
	authService := &fakeAuthService{sessions: map[string]*models.Session{"sess-1": session}}

	router := gin.New()
	router.Use(SessionAuthMiddleware(authService))
	router.GET("/protected", func(c *gin.Context) {
		resolved := SessionFromContext(c)
		if resolved == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionId": resolved.ID, "profileId": resolved.DefaultProfileID})
	})

	request := func(t *testing.T, authHeader string) *httptest.ResponseRecorder {
		t.Helper()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Valid Token Passes", func(t *testing.T) {
		token, err := utils.GenerateSessionToken("sess-1", time.Hour)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		rec := request(t, "Bearer "+token)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
		}
	})

	t.Run("Missing Header", func(t *testing.T) {
		if rec := request(t, ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("Wrong Scheme", func(t *testing.T) {
		if rec := request(t, "Basic abc123"); rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("Garbage Token", func(t *testing.T) {
		if rec := request(t, "Bearer not.a.jwt"); rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := utils.GenerateSessionToken("sess-1", -time.Minute)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if rec := request(t, "Bearer "+token); rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("Unknown Session", func(t *testing.T) {
		token, err := utils.GenerateSessionToken("sess-gone", time.Hour)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		if rec := request(t, "Bearer "+token); rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestSessionFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := SessionFromContext(c); got != nil {
		t.Errorf("expected nil session on unauthenticated context, got %+v", got)
	}
}
