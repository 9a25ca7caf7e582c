// File: latewiz/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"latewiz/config"
	"latewiz/handlers"
	"latewiz/lateapi"
	"latewiz/middleware"
	"latewiz/routes"
	"latewiz/services/accounts"
	authSvc "latewiz/services/auth"
	"latewiz/services/connect"
	"latewiz/services/media"
	"latewiz/services/posts"
	"latewiz/services/profiles"
	"latewiz/services/queue"
	"latewiz/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitAttemptCache()

	// Provider client.
	providerClient := lateapi.NewClient(
		config.AppConfig.ProviderBaseURL,
		config.AppConfig.ProviderAPIKey,
		&http.Client{Timeout: time.Duration(config.AppConfig.ProviderTimeoutMS) * time.Millisecond},
	)

	// Ephemeral state.
	resourceCache := utils.NewRedisResourceCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.CacheTTL)*time.Second,
	)
	attemptStore := connect.NewRedisAttemptStore(
		utils.GetAttemptCacheClient(),
		time.Duration(config.AppConfig.AttemptTTL)*time.Second,
	)
	sessionStore := authSvc.NewRedisSessionStore(
		utils.GetAttemptCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)

	// services.
	authService := &authSvc.DefaultAuthService{
		API:      providerClient,
		Sessions: sessionStore,
	}
	connectService := &connect.DefaultConnectService{
		API:   providerClient,
		Store: attemptStore,
		Cache: resourceCache,
	}
	queueService := &queue.DefaultQueueService{
		API:   providerClient,
		Cache: resourceCache,
	}
	accountService := &accounts.DefaultAccountService{
		API:   providerClient,
		Cache: resourceCache,
	}
	postService := &posts.DefaultPostService{
		API:   providerClient,
		Cache: resourceCache,
	}
	profileService := &profiles.DefaultProfileService{
		API:   providerClient,
		Cache: resourceCache,
	}
	mediaService := &media.DefaultMediaService{
		API: providerClient,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService: authService,

		Auth:     handlers.NewAuthHandler(authService),
		Connect:  handlers.NewConnectHandler(connectService),
		Queue:    handlers.NewQueueHandler(queueService),
		Accounts: handlers.NewAccountsHandler(accountService),
		Posts:    handlers.NewPostsHandler(postService),
		Profiles: handlers.NewProfilesHandler(profileService),
		Media:    handlers.NewMediaHandler(mediaService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
