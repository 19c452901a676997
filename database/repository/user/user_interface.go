package userRepo

import (
	"context"

	"akanuke/models"
)

// UserRepository manages registered accounts. Email is the unique key.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
