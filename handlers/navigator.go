package handlers

import (
	"net/http"

	"akanuke/models"
	"akanuke/services/collection"
	"akanuke/services/navigator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// navigateRequest names the destination view, with an optional initial
// query when the destination is SEARCH.
type navigateRequest struct {
	View  string `json:"view" binding:"required"`
	Query string `json:"query"`
}

// scrollRequest carries one raw scroll offset reading.
type scrollRequest struct {
	Offset float64 `json:"offset"`
}

// GetNavStateHandler returns the owner's navigation snapshot.
func GetNavStateHandler(reg *navigator.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, reg.Get(userID.(string)).Snapshot())
	}
}

// NavigateHandler switches the owner's current view.
func NavigateHandler(reg *navigator.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req navigateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid navigate request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		target, err := navigator.ParseViewState(req.View)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		nav := reg.Get(userID.(string))
		if target == navigator.ViewSearch && req.Query != "" {
			nav.NavigateToSearch(req.Query)
		} else {
			nav.Navigate(target)
		}

		c.JSON(http.StatusOK, nav.Snapshot())
	}
}

// SelectItemHandler enters the detail view for an item and records the
// visit in browsing history.
func SelectItemHandler(reg *navigator.Registry, collections collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var item models.FashionItem
		if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
			logger.Error("Invalid select request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item"})
			return
		}

		nav := reg.Get(userID.(string))
		nav.SelectItem(item)

		if err := collections.RecordHistory(c.Request.Context(), userID.(string), item); err != nil {
			// A failed history write never blocks the navigation itself.
			logger.Warn("Failed to record browsing history", zap.Error(err))
		}

		c.JSON(http.StatusOK, nav.Snapshot())
	}
}

// BackFromDetailHandler leaves the detail view toward its origin.
func BackFromDetailHandler(reg *navigator.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		nav := reg.Get(userID.(string))
		nav.BackFromDetail()
		c.JSON(http.StatusOK, nav.Snapshot())
	}
}

// BackFromCoachHandler leaves the coach view toward its origin.
func BackFromCoachHandler(reg *navigator.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		nav := reg.Get(userID.(string))
		nav.BackFromCoach()
		c.JSON(http.StatusOK, nav.Snapshot())
	}
}

// ScrollHandler feeds one scroll offset through the owner's detector and
// applies any resulting nav bar visibility change.
func ScrollHandler(reg *navigator.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req scrollRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid scroll request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		owner := userID.(string)
		nav := reg.Get(owner)
		if direction, ok := reg.Detector(owner).Observe(req.Offset); ok {
			nav.OnScrollDirection(direction)
		}

		c.JSON(http.StatusOK, nav.Snapshot())
	}
}

// RenderTargetHandler resolves what the client should render right now.
func RenderTargetHandler(reg *navigator.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		view, item := reg.Get(userID.(string)).RenderTarget()
		c.JSON(http.StatusOK, gin.H{"view": view, "item": item})
	}
}
