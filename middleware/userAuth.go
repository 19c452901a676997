package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"akanuke/services/user"
	"akanuke/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func JWTAuthUserMiddleware(sessions user.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		// Retrieve token from header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// Compute token hash.
		computedHash := utils.HashToken(tokenString)
		if computedHash == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		cacheKey := utils.AuthCachePrefix + userID

		// Get the dedicated auth cache client.
		authCache := utils.GetAuthCacheClient()
		cacheEnabled := true
		if authCache == nil {
			// Instead of aborting, log and treat it as a cache miss.
			log.Printf("WARNING: Auth cache client not available. Falling back to session lookup.")
			cacheEnabled = false
		}

		// Attempt to retrieve the token hash from Redis if cache is enabled.
		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("userID", userID)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
					"code":  0,
				})
				return
			} else if err != redis.Nil {
				// Log any other error and proceed to session lookup.
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to session lookup.", err)
			}
		}

		// Cache miss: consult the session markers.
		sessionHash, err := sessions.TokenHash(ctx, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if sessionHash == "" || sessionHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Next()
	}
}
