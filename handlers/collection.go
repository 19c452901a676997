package handlers

import (
	"net/http"

	"akanuke/models"
	"akanuke/services/collection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetFavoritesHandler lists the owner's favorites, oldest first.
func GetFavoritesHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := svc.Favorites(c.Request.Context(), userID.(string))
		if err != nil {
			logger.Error("Failed to load favorites", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
			return
		}
		if items == nil {
			items = []models.FashionItem{}
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// ToggleFavoriteHandler flips one item's membership in favorites.
func ToggleFavoriteHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var item models.FashionItem
		if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
			logger.Error("Invalid favorite toggle request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item"})
			return
		}

		favorited, err := svc.ToggleFavorite(c.Request.Context(), userID.(string), item)
		if err != nil {
			logger.Error("Failed to toggle favorite", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"favorited": favorited})
	}
}

// CheckFavoriteHandler reports one item's favorite membership.
func CheckFavoriteHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID := c.Param("itemID")
		c.JSON(http.StatusOK, gin.H{
			"favorited": svc.IsFavorite(c.Request.Context(), userID.(string), itemID),
		})
	}
}

// GetHistoryHandler lists the browsing history, most recent first.
func GetHistoryHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := svc.History(c.Request.Context(), userID.(string))
		if err != nil {
			logger.Error("Failed to load history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
			return
		}
		if items == nil {
			items = []models.FashionItem{}
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// RecordHistoryHandler records one item visit directly.
func RecordHistoryHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var item models.FashionItem
		if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
			logger.Error("Invalid history request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item"})
			return
		}

		if err := svc.RecordHistory(c.Request.Context(), userID.(string), item); err != nil {
			logger.Error("Failed to record history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record history"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "recorded"})
	}
}

// GetSearchesHandler lists the recent search queries, most recent first.
func GetSearchesHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		queries, err := svc.Searches(c.Request.Context(), userID.(string))
		if err != nil {
			logger.Error("Failed to load searches", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load searches"})
			return
		}
		if queries == nil {
			queries = []string{}
		}

		c.JSON(http.StatusOK, gin.H{"queries": queries})
	}
}

// RecordSearchHandler remembers one query directly.
func RecordSearchHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req struct {
			Query string `json:"query" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid search record request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.RecordSearch(c.Request.Context(), userID.(string), req.Query); err != nil {
			logger.Error("Failed to record search", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record search"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "recorded"})
	}
}

// RemoveSearchHandler deletes one remembered query.
func RemoveSearchHandler(svc collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req struct {
			Query string `json:"query" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid search removal request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.RemoveSearch(c.Request.Context(), userID.(string), req.Query); err != nil {
			logger.Error("Failed to remove search", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove search"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "removed"})
	}
}

// ClearCollectionHandler drops the collection stored under key entirely.
func ClearCollectionHandler(svc collection.Service, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.Clear(c.Request.Context(), userID.(string), key); err != nil {
			logger.Error("Failed to clear collection", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear collection"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "cleared"})
	}
}
