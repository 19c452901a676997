package user

import (
	"context"
	"fmt"
	"strings"

	"akanuke/models"
	"akanuke/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const guestIDPrefix = "guest-"

// IsGuest reports whether the session owner is a guest login.
func IsGuest(userID string) bool {
	return strings.HasPrefix(userID, guestIDPrefix)
}

// Login authenticates against the stored accounts. Any mismatch,
// unknown email or wrong password alike, surfaces as
// InvalidCredentialsError. On success the stored profile's name is
// synced from the matched account and the session is marked active.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, InvalidCredentialsError{}
	}

	// Sync the profile's name from the matched account.
	profile := models.UserProfile{}
	if err := s.Store.Load(ctx, userRec.ID, utils.KeyUserProfile, &profile); err != nil {
		utils.GetLogger().Warn("Login: failed to load profile", zap.Error(err))
	}
	if profile.Name != userRec.Name {
		profile.Name = userRec.Name
		if err := s.Store.Save(ctx, userRec.ID, utils.KeyUserProfile, profile); err != nil {
			utils.GetLogger().Warn("Login: failed to sync profile name", zap.Error(err))
		}
	}

	return s.openSession(ctx, userRec, false)
}

// GuestLogin always succeeds. It ensures a default "Guest" profile exists
// and marks the session active. Guest profiles are read-mostly: edits are
// rejected at the handler layer, not here.
func (s *DefaultUserService) GuestLogin(ctx context.Context) (*AuthResponse, error) {
	guest := models.User{
		ID:   guestIDPrefix + uuid.New().String(),
		Name: "Guest",
	}

	profile := models.UserProfile{}
	if err := s.Store.Load(ctx, guest.ID, utils.KeyUserProfile, &profile); err != nil {
		utils.GetLogger().Warn("GuestLogin: failed to load profile", zap.Error(err))
	}
	if profile.Name == "" {
		profile.Name = "Guest"
		if err := s.Store.Save(ctx, guest.ID, utils.KeyUserProfile, profile); err != nil {
			utils.GetLogger().Warn("GuestLogin: failed to seed profile", zap.Error(err))
		}
	}

	return s.openSession(ctx, &guest, true)
}

// Logout clears the session marker immediately, with no confirmation
// and no draining of in-flight work, and resets navigation to HOME for
// the next login. Guest logouts also schedule a delayed sweep of the
// guest's leftover data.
func (s *DefaultUserService) Logout(ctx context.Context, userID string) error {
	if err := s.Sessions.Clear(ctx, userID); err != nil {
		utils.GetLogger().Error("Logout: failed to clear session", zap.Error(err))
		return fmt.Errorf("logout failed, please try again")
	}
	if s.Nav != nil {
		s.Nav.Get(userID).Reset()
	}
	if IsGuest(userID) && s.Sweep != nil {
		s.Sweep(userID)
	}
	return nil
}

// HasSession reports whether the owner has an active session marker.
func (s *DefaultUserService) HasSession(ctx context.Context, userID string) bool {
	return s.Sessions.Active(ctx, userID)
}

// Profile returns the owner's stored profile, or an empty one.
func (s *DefaultUserService) Profile(ctx context.Context, owner string) (models.UserProfile, error) {
	profile := models.UserProfile{}
	if err := s.Store.Load(ctx, owner, utils.KeyUserProfile, &profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// UpdateProfile merges the partial update into the stored profile;
// unspecified fields retain their prior value.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, owner string, update models.ProfileUpdate) (models.UserProfile, error) {
	profile := models.UserProfile{}
	if err := s.Store.Load(ctx, owner, utils.KeyUserProfile, &profile); err != nil {
		return models.UserProfile{}, err
	}
	merged := update.Apply(profile)
	if err := s.Store.Save(ctx, owner, utils.KeyUserProfile, merged); err != nil {
		return models.UserProfile{}, err
	}
	return merged, nil
}
