package handlers

import (
	"net/http"

	"akanuke/services/catalog"

	"github.com/gin-gonic/gin"
)

// GetPickupItemsHandler returns the curated pickup shelf.
func GetPickupItemsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": catalog.PickupItems()})
	}
}

// GetRankingItemsHandler returns the curated ranking shelf.
func GetRankingItemsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": catalog.RankingItems()})
	}
}

// GetMarketplaceLinkHandler builds the outbound marketplace link for a
// search query.
func GetMarketplaceLinkHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": catalog.MarketplaceURL(query)})
	}
}
