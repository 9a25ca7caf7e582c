package routes

import (
	"net/http"
	"time"

	"latewiz/handlers"
	"latewiz/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the access-gate endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.GET("/check", hb.Auth.CheckHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.SessionAuthMiddleware(hb.AuthService))
		api.PUT("/profile", hb.Auth.SetDefaultProfileHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterConnectRoutes registers the OAuth callback flow endpoints.
func RegisterConnectRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/connect")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthService))
		api.GET("/callback", hb.Connect.CallbackHandler)
		api.GET("/attempts/:attemptID", hb.Connect.GetAttemptHandler)
		api.POST("/attempts/:attemptID/select", hb.Connect.SelectEntityHandler)
		api.GET("/:platform", hb.Accounts.ConnectURLHandler)
	}
}

// RegisterQueueRoutes registers queue schedule endpoints.
func RegisterQueueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/queue")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthService))
		api.GET("", hb.Queue.GetQueueHandler)
		api.POST("", hb.Queue.CreateQueueHandler)
		api.PATCH("", hb.Queue.UpdateQueueHandler)
		api.DELETE("", hb.Queue.DeleteQueueHandler)
		api.GET("/preview", hb.Queue.PreviewQueueHandler)
		api.GET("/next", hb.Queue.NextSlotHandler)
		api.GET("/timezones", hb.Queue.TimezonesHandler)
	}
}

// RegisterAccountRoutes registers connected-account endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthService))
		api.GET("", hb.Accounts.ListAccountsHandler)
		api.GET("/health", hb.Accounts.AccountsHealthHandler)
		api.DELETE("/:accountID", hb.Accounts.DeleteAccountHandler)
	}
}

// RegisterPostRoutes registers compose and calendar endpoints.
func RegisterPostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/posts")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthService))
		api.GET("", hb.Posts.ListPostsHandler)
		api.POST("", hb.Posts.CreatePostHandler)
		api.GET("/:postID", hb.Posts.GetPostHandler)
		api.PATCH("/:postID", hb.Posts.UpdatePostHandler)
		api.DELETE("/:postID", hb.Posts.DeletePostHandler)
		api.POST("/:postID/retry", hb.Posts.RetryPostHandler)
	}
}

// RegisterProfileRoutes registers workspace-profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthService))
		api.GET("", hb.Profiles.ListProfilesHandler)
		api.POST("", hb.Profiles.CreateProfileHandler)
		api.GET("/:profileID", hb.Profiles.GetProfileHandler)
		api.PATCH("/:profileID", hb.Profiles.UpdateProfileHandler)
		api.DELETE("/:profileID", hb.Profiles.DeleteProfileHandler)
	}
}

// RegisterMediaRoutes registers media upload endpoints.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/media")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.AuthService))
		api.POST("/presign", hb.Media.PresignHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LateWiz"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterConnectRoutes(r, hb)
	RegisterQueueRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterPostRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
	RegisterHealthRoute(r)
}
