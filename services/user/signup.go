package user

import (
	"context"
	"fmt"
	"time"

	"akanuke/models"
	"akanuke/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued session tokens.
const tokenTTL = 24 * time.Hour

// Register creates a new account. It fails with DuplicateEmailError when
// the email already has an account, leaving the user collection untouched.
// On success it seeds the profile with the account name, marks the session
// active and returns the auth response.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: email}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.Repo.Create(ctx, &userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	// Initialize the profile record keyed by the account name.
	profile := models.UserProfile{}
	if err := s.Store.Load(ctx, userObj.ID, utils.KeyUserProfile, &profile); err != nil {
		utils.GetLogger().Warn("Register: failed to load profile", zap.Error(err))
	}
	profile.Name = name
	if err := s.Store.Save(ctx, userObj.ID, utils.KeyUserProfile, profile); err != nil {
		utils.GetLogger().Warn("Register: failed to seed profile", zap.Error(err))
	}

	return s.openSession(ctx, &userObj, false)
}

// openSession issues a token, marks the session active, and builds the
// auth response.
func (s *DefaultUserService) openSession(ctx context.Context, userObj *models.User, guest bool) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userObj.ID, userObj.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("openSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := s.Sessions.Mark(ctx, userObj.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("openSession: failed to mark session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Email: userObj.Email,
		Guest: guest,
	}, nil
}
