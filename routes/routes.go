package routes

import (
	"net/http"
	"time"

	"akanuke/handlers"
	"akanuke/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login, and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.POST("/guest", hb.GuestLoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterProfileRoutes registers profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
		api.GET("", hb.GetProfileHandler)
		api.PATCH("", hb.UpdateProfileHandler)
	}
}

// RegisterNavRoutes registers the navigation endpoints.
func RegisterNavRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/nav")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
		api.GET("/state", hb.GetNavStateHandler)
		api.GET("/render", hb.RenderTargetHandler)
		api.POST("/navigate", hb.NavigateHandler)
		api.POST("/select", hb.SelectItemHandler)
		api.POST("/back/detail", hb.BackFromDetailHandler)
		api.POST("/back/coach", hb.BackFromCoachHandler)
		api.POST("/scroll", hb.ScrollHandler)
	}
}

// RegisterCollectionRoutes registers favorites, history, and search
// history endpoints.
func RegisterCollectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthUserMiddleware(hb.Sessions)

	favorites := r.Group("/api/favorites")
	{
		favorites.Use(auth)
		favorites.GET("", hb.GetFavoritesHandler)
		favorites.POST("/toggle", hb.ToggleFavoriteHandler)
		favorites.GET("/:itemID", hb.CheckFavoriteHandler)
		favorites.DELETE("", hb.ClearFavoritesHandler)
	}

	history := r.Group("/api/history")
	{
		history.Use(auth)
		history.GET("", hb.GetHistoryHandler)
		history.POST("", hb.RecordHistoryHandler)
		history.DELETE("", hb.ClearHistoryHandler)
	}

	searches := r.Group("/api/searches")
	{
		searches.Use(auth)
		searches.GET("", hb.GetSearchesHandler)
		searches.POST("", hb.RecordSearchHandler)
		searches.DELETE("/entry", hb.RemoveSearchHandler)
		searches.DELETE("", hb.ClearSearchesHandler)
	}
}

// RegisterAIRoutes registers the advisory endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
		api.POST("/analyze", hb.AnalyzeOutfitHandler)
		api.POST("/coach/open", hb.OpenCoachSessionHandler)
		api.POST("/coach/turn", hb.SendCoachTurnHandler)
		api.POST("/coach/reset", hb.ResetCoachSessionHandler)
		api.GET("/coach/messages", hb.GetCoachMessagesHandler)
		api.POST("/search", hb.SearchItemsHandler)
		api.GET("/related", hb.RelatedItemsHandler)
	}
}

// RegisterCatalogRoutes registers the curated shelf endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.Sessions))
		api.GET("/pickup", hb.GetPickupItemsHandler)
		api.GET("/ranking", hb.GetRankingItemsHandler)
		api.GET("/marketplace-link", hb.GetMarketplaceLinkHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Akanuke"})
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
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterNavRoutes(r, hb)
	RegisterCollectionRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
