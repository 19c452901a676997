package user

import (
	"context"

	collectionRepo "akanuke/database/repository/collection"
	userRepo "akanuke/database/repository/user"
	"akanuke/models"
	"akanuke/services/navigator"
)

// Service gates all navigation behind an active session and owns the
// register/login/guest/logout lifecycle.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	GuestLogin(ctx context.Context) (*AuthResponse, error)
	Logout(ctx context.Context, userID string) error
	HasSession(ctx context.Context, userID string) bool

	Profile(ctx context.Context, owner string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, owner string, update models.ProfileUpdate) (models.UserProfile, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Store    collectionRepo.Store
	Sessions SessionStore
	Nav      *navigator.Registry

	// Sweep, when set, schedules the delayed reclaim of a guest's data
	// after logout.
	Sweep func(owner string)
}

// AuthResponse contains the session's ID, token, and display details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Guest bool   `json:"guest,omitempty"`
}
