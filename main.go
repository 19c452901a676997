// File: akanuke/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"akanuke/config"
	"akanuke/cron"
	"akanuke/database"
	collectionRepoPkg "akanuke/database/repository/collection"
	userRepoPkg "akanuke/database/repository/user"
	"akanuke/handlers"
	"akanuke/routes"
	"akanuke/services/advisory"
	"akanuke/services/collection"
	"akanuke/services/navigator"
	"akanuke/services/storage"
	"akanuke/services/tasks"
	"akanuke/services/user"
	"akanuke/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitAdvisoryCache()

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary photo store: %v", err)
	}
	photoStore := storage.NewCloudinaryPhotoStore(cld)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(func(c *gin.Context) {
		c.Set("logger", logger)
		c.Next()
	})

	// repositories.
	store := collectionRepoPkg.NewMongoStore()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	navRegistry := navigator.NewRegistry()
	sessions := user.NewRedisSessionStore(utils.GetAuthCacheClient())

	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Store:    store,
		Sessions: sessions,
		Nav:      navRegistry,
		Sweep:    tasks.EnqueueGuestSweep,
	}

	collectionService := collection.NewService(store)

	ctxStore := advisory.NewRedisContextStore(utils.GetAdvisoryCacheClient(), 30*time.Minute)
	advisorySvc := advisory.NewDefaultAdvisoryService(
		advisory.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		ctxStore,
		photoStore,
		userService,
	)

	// Background sweep of stale guest data.
	cron.InitSweepWorker(store, photoStore, ctxStore)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessions,

		// Auth and profile endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler(userService),
		AuthenticateUserHandler: handlers.AuthenticateUserHandler(userService),
		GuestLoginHandler:       handlers.GuestLoginHandler(userService),
		LogoutHandler:           handlers.LogoutHandler(userService),
		GetProfileHandler:       handlers.GetProfileHandler(userService),
		UpdateProfileHandler:    handlers.UpdateProfileHandler(userService),

		// Navigation endpoints.
		GetNavStateHandler:    handlers.GetNavStateHandler(navRegistry),
		NavigateHandler:       handlers.NavigateHandler(navRegistry),
		SelectItemHandler:     handlers.SelectItemHandler(navRegistry, collectionService),
		BackFromDetailHandler: handlers.BackFromDetailHandler(navRegistry),
		BackFromCoachHandler:  handlers.BackFromCoachHandler(navRegistry),
		ScrollHandler:         handlers.ScrollHandler(navRegistry),
		RenderTargetHandler:   handlers.RenderTargetHandler(navRegistry),

		// Collection endpoints.
		GetFavoritesHandler:   handlers.GetFavoritesHandler(collectionService),
		ToggleFavoriteHandler: handlers.ToggleFavoriteHandler(collectionService),
		CheckFavoriteHandler:  handlers.CheckFavoriteHandler(collectionService),
		ClearFavoritesHandler: handlers.ClearCollectionHandler(collectionService, utils.KeyFavorites),
		GetHistoryHandler:     handlers.GetHistoryHandler(collectionService),
		RecordHistoryHandler:  handlers.RecordHistoryHandler(collectionService),
		ClearHistoryHandler:   handlers.ClearCollectionHandler(collectionService, utils.KeyBrowsingHist),
		GetSearchesHandler:    handlers.GetSearchesHandler(collectionService),
		RecordSearchHandler:   handlers.RecordSearchHandler(collectionService),
		RemoveSearchHandler:   handlers.RemoveSearchHandler(collectionService),
		ClearSearchesHandler:  handlers.ClearCollectionHandler(collectionService, utils.KeySearchHistory),

		// Advisory endpoints.
		AnalyzeOutfitHandler:     handlers.AnalyzeOutfitHandler(advisorySvc),
		OpenCoachSessionHandler:  handlers.OpenCoachSessionHandler(advisorySvc),
		SendCoachTurnHandler:     handlers.SendCoachTurnHandler(advisorySvc),
		ResetCoachSessionHandler: handlers.ResetCoachSessionHandler(advisorySvc),
		GetCoachMessagesHandler:  handlers.GetCoachMessagesHandler(advisorySvc),
		SearchItemsHandler:       handlers.SearchItemsHandler(advisorySvc, collectionService),
		RelatedItemsHandler:      handlers.RelatedItemsHandler(advisorySvc),

		// Catalog endpoints.
		GetPickupItemsHandler:     handlers.GetPickupItemsHandler(),
		GetRankingItemsHandler:    handlers.GetRankingItemsHandler(),
		GetMarketplaceLinkHandler: handlers.GetMarketplaceLinkHandler(),
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
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
