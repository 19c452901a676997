package handlers

import (
	"errors"
	"io"
	"net/http"

	"akanuke/services/advisory"
	"akanuke/services/collection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxOutfitPhotoBytes bounds an uploaded outfit photo.
const maxOutfitPhotoBytes = 10 << 20

// turnRequest carries one user chat message.
type turnRequest struct {
	Text string `json:"text" binding:"required"`
}

// searchRequest carries one search query.
type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

// AnalyzeOutfitHandler critiques an outfit photo. The photo arrives as
// multipart field "photo"; omitting it re-analyzes the retained photo.
func AnalyzeOutfitHandler(svc advisory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var jpeg []byte
		if file, err := c.FormFile("photo"); err == nil {
			if file.Size > maxOutfitPhotoBytes {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Photo too large"})
				return
			}
			f, err := file.Open()
			if err != nil {
				logger.Error("Failed to open uploaded photo", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable photo"})
				return
			}
			defer f.Close()
			jpeg, err = io.ReadAll(f)
			if err != nil {
				logger.Error("Failed to read uploaded photo", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable photo"})
				return
			}
		}

		analysis, err := svc.AnalyzeImage(c.Request.Context(), userID.(string), jpeg)
		if err != nil {
			var failed advisory.AnalysisFailedError
			if errors.As(err, &failed) {
				logger.Warn("Outfit analysis failed", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": failed.Error()})
				return
			}
			logger.Error("Outfit analysis error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
			return
		}

		c.JSON(http.StatusOK, analysis)
	}
}

// OpenCoachSessionHandler opens (or resumes) the coaching session.
func OpenCoachSessionHandler(svc advisory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		msg, err := svc.OpenSession(c.Request.Context(), userID.(string))
		if err != nil {
			logger.Error("Failed to open coach session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
			return
		}

		c.JSON(http.StatusOK, msg)
	}
}

// SendCoachTurnHandler sends one chat message and returns the reply.
func SendCoachTurnHandler(svc advisory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req turnRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid chat turn request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		reply, err := svc.SendTurn(c.Request.Context(), userID.(string), req.Text)
		if err != nil {
			logger.Error("Failed to process chat turn", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
			return
		}

		c.JSON(http.StatusOK, reply)
	}
}

// ResetCoachSessionHandler discards the conversation and re-greets.
func ResetCoachSessionHandler(svc advisory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		msg, err := svc.ResetSession(c.Request.Context(), userID.(string))
		if err != nil {
			logger.Error("Failed to reset coach session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset session"})
			return
		}

		c.JSON(http.StatusOK, msg)
	}
}

// GetCoachMessagesHandler returns the stored conversation, oldest first.
func GetCoachMessagesHandler(svc advisory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		messages, err := svc.Messages(c.Request.Context(), userID.(string))
		if err != nil {
			logger.Error("Failed to load conversation", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load conversation"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"messages": messages})
	}
}

// SearchItemsHandler runs a grounded fashion search and remembers the
// query in search history.
func SearchItemsHandler(svc advisory.Service, collections collection.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req searchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid search request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := collections.RecordSearch(c.Request.Context(), userID.(string), req.Query); err != nil {
			// The search itself still runs when the history write fails.
			logger.Warn("Failed to record search query", zap.Error(err))
		}

		resp, err := svc.SearchItems(c.Request.Context(), req.Query)
		if err != nil {
			logger.Error("Search failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Search failed, please try again"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// RelatedItemsHandler suggests items related to the named one.
func RelatedItemsHandler(svc advisory.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if _, exists := c.Get("userID"); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing item name"})
			return
		}

		items, err := svc.RelatedItems(c.Request.Context(), name)
		if err != nil {
			logger.Error("Failed to load related items", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load related items"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
