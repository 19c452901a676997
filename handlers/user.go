package handlers

import (
	"errors"
	"net/http"

	"akanuke/models"
	"akanuke/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// registerRequest carries a new account's details.
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// loginRequest carries the credentials for an existing account.
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserHandler creates an account and opens its session.
func RegisterUserHandler(svc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid register request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			var dup user.DuplicateEmailError
			if errors.As(err, &dup) {
				c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
				return
			}
			logger.Error("Failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// AuthenticateUserHandler logs an existing account in.
func AuthenticateUserHandler(svc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid login request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			var invalid user.InvalidCredentialsError
			if errors.As(err, &invalid) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": invalid.Error()})
				return
			}
			logger.Error("Failed to authenticate user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GuestLoginHandler opens an anonymous session.
func GuestLoginHandler(svc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		resp, err := svc.GuestLogin(c.Request.Context())
		if err != nil {
			logger.Error("Failed to open guest session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Guest login failed"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler ends the authenticated session immediately.
func LogoutHandler(svc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := svc.Logout(c.Request.Context(), userID.(string)); err != nil {
			logger.Error("Failed to log out", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		profile, err := svc.Profile(c.Request.Context(), userID.(string))
		if err != nil {
			logger.Error("Failed to get user profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler merges a partial update into the profile. Guest
// sessions are read-only here.
func UpdateProfileHandler(svc user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, exists := c.Get("userID")
		if !exists {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if user.IsGuest(userID.(string)) {
			c.JSON(http.StatusForbidden, gin.H{"error": user.GuestReadOnlyError{}.Error()})
			return
		}

		var update models.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			logger.Error("Invalid profile update request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		profile, err := svc.UpdateProfile(c.Request.Context(), userID.(string), update)
		if err != nil {
			logger.Error("Failed to update profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}
