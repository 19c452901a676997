package advisory

import (
	"context"

	"akanuke/models"
	"akanuke/services/storage"
	"akanuke/services/user"
)

// Service is the advisory client: structured outfit analysis, the
// multi-turn coach persona, and grounded item search.
type Service interface {
	// AnalyzeImage runs one structured critique of an outfit photo.
	// Passing nil bytes re-analyzes the owner's retained photo, so a
	// failed call can be retried without re-uploading.
	AnalyzeImage(ctx context.Context, owner string, jpeg []byte) (*models.FashionAnalysis, error)

	// OpenSession starts (or restarts) the owner's coaching session and
	// returns the opening greeting.
	OpenSession(ctx context.Context, owner string) (models.ChatMessage, error)

	// SendTurn sends one user message and returns the assistant reply.
	// Transport failures yield a fixed fallback reply, not an error, so
	// the conversation continues through transient failures.
	SendTurn(ctx context.Context, owner, text string) (models.ChatMessage, error)

	// ResetSession clears the stored conversation and re-greets.
	ResetSession(ctx context.Context, owner string) (models.ChatMessage, error)

	// Messages returns the stored conversation, oldest first.
	Messages(ctx context.Context, owner string) ([]models.ChatMessage, error)

	// SearchItems runs a grounded fashion search for the query.
	SearchItems(ctx context.Context, query string) (*models.SearchResponse, error)

	// RelatedItems suggests items related to the named one, for the
	// detail view.
	RelatedItems(ctx context.Context, name string) ([]models.FashionItem, error)
}

// Generator abstracts the generative backend so the service logic can be
// exercised without network access.
type Generator interface {
	AnalyzeOutfit(ctx context.Context, jpeg []byte) (string, error)
	ChatReply(ctx context.Context, persona string, history []models.ChatMessage, message string) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// DefaultAdvisoryService is the production implementation.
type DefaultAdvisoryService struct {
	Gen      Generator
	Contexts ContextStore
	Photos   storage.PhotoStore
	Users    user.Service
}

// NewDefaultAdvisoryService wires the advisory service.
func NewDefaultAdvisoryService(gen Generator, contexts ContextStore, photos storage.PhotoStore, users user.Service) *DefaultAdvisoryService {
	return &DefaultAdvisoryService{
		Gen:      gen,
		Contexts: contexts,
		Photos:   photos,
		Users:    users,
	}
}
