package collection

import (
	"context"

	"akanuke/models"
)

// Service keeps the persisted collections and every view's in-memory
// reflection of them in agreement after each mutation.
type Service interface {
	// Favorites
	Favorites(ctx context.Context, owner string) ([]models.FashionItem, error)
	ToggleFavorite(ctx context.Context, owner string, item models.FashionItem) (bool, error)
	IsFavorite(ctx context.Context, owner, itemID string) bool

	// Browsing history
	History(ctx context.Context, owner string) ([]models.FashionItem, error)
	RecordHistory(ctx context.Context, owner string, item models.FashionItem) error

	// Search history
	Searches(ctx context.Context, owner string) ([]string, error)
	RecordSearch(ctx context.Context, owner, query string) error
	RemoveSearch(ctx context.Context, owner, query string) error

	// Clear removes a persisted collection and resets its reflection.
	Clear(ctx context.Context, owner, key string) error

	// Subscribe registers a callback fired after any mutation of the
	// owner's named collection.
	Subscribe(owner, key string, fn func())
}
