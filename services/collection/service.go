package collection

import (
	"context"
	"strings"
	"sync"

	collectionRepo "akanuke/database/repository/collection"
	"akanuke/models"
	"akanuke/utils"

	"go.uber.org/zap"
)

const (
	// historyCap bounds the browsing history; insertion beyond the cap
	// evicts from the tail.
	historyCap = 30
	// searchCap bounds the search-query history.
	searchCap = 10
)

// DefaultService is the production implementation of Service.
type DefaultService struct {
	Store collectionRepo.Store

	hub *hub

	// favIDs is the in-memory reflection of the favorites collection: a
	// set of known IDs per owner, rebuilt from the persisted copy on load
	// and refreshed after each toggle. The persisted array stays the
	// writer-of-record; the two are eventually consistent, not atomic.
	mu     sync.RWMutex
	favIDs map[string]map[string]struct{}
}

// NewService creates a Service over the given store.
func NewService(store collectionRepo.Store) *DefaultService {
	return &DefaultService{
		Store:  store,
		hub:    newHub(),
		favIDs: make(map[string]map[string]struct{}),
	}
}

// Favorites returns the persisted favorites in insertion order and
// rebuilds the ID reflection from them.
func (s *DefaultService) Favorites(ctx context.Context, owner string) ([]models.FashionItem, error) {
	items := []models.FashionItem{}
	if err := s.Store.Load(ctx, owner, utils.KeyFavorites, &items); err != nil {
		return nil, err
	}
	s.refreshFavIDs(owner, items)
	return items, nil
}

// ToggleFavorite flips the item's membership by ID. Present items are
// filtered out, absent ones appended; insertion order is display order.
// The persisted array is written first, then the reflection updated.
// It reports whether the item is a favorite afterwards.
func (s *DefaultService) ToggleFavorite(ctx context.Context, owner string, item models.FashionItem) (bool, error) {
	items := []models.FashionItem{}
	if err := s.Store.Load(ctx, owner, utils.KeyFavorites, &items); err != nil {
		return false, err
	}

	present := false
	for _, f := range items {
		if f.ID == item.ID {
			present = true
			break
		}
	}

	if present {
		filtered := items[:0]
		for _, f := range items {
			if f.ID != item.ID {
				filtered = append(filtered, f)
			}
		}
		items = filtered
	} else {
		items = append(items, item)
	}

	if err := s.Store.Save(ctx, owner, utils.KeyFavorites, items); err != nil {
		return false, err
	}
	s.refreshFavIDs(owner, items)
	s.hub.publish(owner, utils.KeyFavorites)
	return !present, nil
}

// IsFavorite answers from the in-memory reflection, loading it from the
// persisted copy on first use.
func (s *DefaultService) IsFavorite(ctx context.Context, owner, itemID string) bool {
	s.mu.RLock()
	ids, ok := s.favIDs[owner]
	if ok {
		_, fav := ids[itemID]
		s.mu.RUnlock()
		return fav
	}
	s.mu.RUnlock()

	if _, err := s.Favorites(ctx, owner); err != nil {
		utils.GetLogger().Warn("failed to load favorites for reflection",
			zap.String("owner", owner), zap.Error(err))
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, fav := s.favIDs[owner][itemID]
	return fav
}

func (s *DefaultService) refreshFavIDs(owner string, items []models.FashionItem) {
	ids := make(map[string]struct{}, len(items))
	for _, f := range items {
		ids[f.ID] = struct{}{}
	}
	s.mu.Lock()
	s.favIDs[owner] = ids
	s.mu.Unlock()
}

// History returns the browsing history, most recent first.
func (s *DefaultService) History(ctx context.Context, owner string) ([]models.FashionItem, error) {
	items := []models.FashionItem{}
	if err := s.Store.Load(ctx, owner, utils.KeyBrowsingHist, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RecordHistory prepends the item to the browsing history. Re-viewing an
// item bumps it to the front instead of duplicating it; the history is
// truncated to the newest 30 entries.
func (s *DefaultService) RecordHistory(ctx context.Context, owner string, item models.FashionItem) error {
	items := []models.FashionItem{}
	if err := s.Store.Load(ctx, owner, utils.KeyBrowsingHist, &items); err != nil {
		return err
	}

	filtered := make([]models.FashionItem, 0, len(items)+1)
	filtered = append(filtered, item)
	for _, h := range items {
		if h.ID != item.ID {
			filtered = append(filtered, h)
		}
	}
	if len(filtered) > historyCap {
		filtered = filtered[:historyCap]
	}

	if err := s.Store.Save(ctx, owner, utils.KeyBrowsingHist, filtered); err != nil {
		return err
	}
	s.hub.publish(owner, utils.KeyBrowsingHist)
	return nil
}

// Searches returns the search-query history, most recent first.
func (s *DefaultService) Searches(ctx context.Context, owner string) ([]string, error) {
	queries := []string{}
	if err := s.Store.Load(ctx, owner, utils.KeySearchHistory, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

// RecordSearch prepends the trimmed query, dropping exact-string
// duplicates and truncating to the newest 10. Empty queries are ignored.
func (s *DefaultService) RecordSearch(ctx context.Context, owner, query string) error {
	clean := strings.TrimSpace(query)
	if clean == "" {
		return nil
	}

	queries := []string{}
	if err := s.Store.Load(ctx, owner, utils.KeySearchHistory, &queries); err != nil {
		return err
	}

	updated := make([]string, 0, len(queries)+1)
	updated = append(updated, clean)
	for _, q := range queries {
		if q != clean {
			updated = append(updated, q)
		}
	}
	if len(updated) > searchCap {
		updated = updated[:searchCap]
	}

	if err := s.Store.Save(ctx, owner, utils.KeySearchHistory, updated); err != nil {
		return err
	}
	s.hub.publish(owner, utils.KeySearchHistory)
	return nil
}

// RemoveSearch deletes a single query from the search history.
func (s *DefaultService) RemoveSearch(ctx context.Context, owner, query string) error {
	queries := []string{}
	if err := s.Store.Load(ctx, owner, utils.KeySearchHistory, &queries); err != nil {
		return err
	}

	updated := queries[:0]
	for _, q := range queries {
		if q != query {
			updated = append(updated, q)
		}
	}

	if err := s.Store.Save(ctx, owner, utils.KeySearchHistory, updated); err != nil {
		return err
	}
	s.hub.publish(owner, utils.KeySearchHistory)
	return nil
}

// Clear removes the persisted collection and resets its reflection.
func (s *DefaultService) Clear(ctx context.Context, owner, key string) error {
	if err := s.Store.Remove(ctx, owner, key); err != nil {
		return err
	}
	if key == utils.KeyFavorites {
		s.mu.Lock()
		delete(s.favIDs, owner)
		s.mu.Unlock()
	}
	s.hub.publish(owner, key)
	return nil
}

// Subscribe registers a callback fired after any mutation of the owner's
// named collection.
func (s *DefaultService) Subscribe(owner, key string, fn func()) {
	s.hub.subscribe(owner, key, fn)
}
