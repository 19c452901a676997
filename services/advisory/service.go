package advisory

import (
	"context"
	"encoding/json"
	"time"

	"akanuke/models"
	"akanuke/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyzeImage critiques one outfit photo. Fresh bytes replace the
// owner's retained photo before analysis; nil bytes re-run the analysis
// on whatever photo is retained.
func (s *DefaultAdvisoryService) AnalyzeImage(ctx context.Context, owner string, jpeg []byte) (*models.FashionAnalysis, error) {
	logger := utils.GetLogger().Sugar()

	if len(jpeg) > 0 {
		if err := s.Photos.Save(ctx, owner, jpeg); err != nil {
			logger.Warnf("Failed to retain outfit photo for %s: %v", owner, err)
		}
	} else {
		retained, err := s.Photos.Load(ctx, owner)
		if err != nil || len(retained) == 0 {
			return nil, AnalysisFailedError{Err: err}
		}
		jpeg = retained
	}

	raw, err := s.Gen.AnalyzeOutfit(ctx, jpeg)
	if err != nil {
		logger.Errorf("Outfit analysis failed for %s: %v", owner, err)
		return nil, AnalysisFailedError{Err: err}
	}

	var analysis models.FashionAnalysis
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &analysis); err != nil {
		logger.Errorf("Outfit analysis returned unparseable payload for %s: %v", owner, err)
		return nil, AnalysisFailedError{Err: err}
	}
	return &analysis, nil
}

// OpenSession starts the owner's coaching session. An existing
// conversation is kept; the greeting is only issued when the session is
// empty, so reopening the coach resumes where the user left off.
func (s *DefaultAdvisoryService) OpenSession(ctx context.Context, owner string) (models.ChatMessage, error) {
	existing, err := s.Contexts.Get(ctx, owner)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if len(existing) > 0 {
		return existing[len(existing)-1], nil
	}
	return s.greet(ctx, owner)
}

// ResetSession discards the conversation and issues a fresh greeting.
func (s *DefaultAdvisoryService) ResetSession(ctx context.Context, owner string) (models.ChatMessage, error) {
	if err := s.Contexts.Clear(ctx, owner); err != nil {
		return models.ChatMessage{}, err
	}
	return s.greet(ctx, owner)
}

func (s *DefaultAdvisoryService) greet(ctx context.Context, owner string) (models.ChatMessage, error) {
	profile, err := s.Users.Profile(ctx, owner)
	if err != nil {
		utils.GetLogger().Warn("Failed to load profile for greeting", zap.String("owner", owner), zap.Error(err))
	}

	greeting := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleModel,
		Text:      greetingFor(profile),
		Timestamp: time.Now(),
	}
	if err := s.Contexts.Set(ctx, owner, []models.ChatMessage{greeting}); err != nil {
		return models.ChatMessage{}, err
	}
	return greeting, nil
}

// SendTurn records the user message and asks the coach for a reply. A
// backend failure produces the canned fallback reply instead of an error
// so the conversation stays usable.
func (s *DefaultAdvisoryService) SendTurn(ctx context.Context, owner, text string) (models.ChatMessage, error) {
	logger := utils.GetLogger().Sugar()

	history, err := s.Contexts.Get(ctx, owner)
	if err != nil {
		return models.ChatMessage{}, err
	}

	userMsg := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleUser,
		Text:      text,
		Timestamp: time.Now(),
	}

	profile, err := s.Users.Profile(ctx, owner)
	if err != nil {
		logger.Warnf("Failed to load profile for chat turn: %v", err)
	}

	reply := models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      models.RoleModel,
		Timestamp: time.Now(),
	}

	raw, genErr := s.Gen.ChatReply(ctx, personaFor(profile), history, text)
	if genErr != nil {
		logger.Errorf("Chat turn failed for %s: %v", owner, TurnFailedError{Err: genErr})
		reply.Text = fallbackReply
	} else {
		reply.Text, reply.Recommendations = parseAssistantReply(raw)
	}

	history = append(history, userMsg, reply)
	if err := s.Contexts.Set(ctx, owner, history); err != nil {
		logger.Errorf("Failed to persist conversation for %s: %v", owner, err)
	}
	return reply, nil
}

// Messages returns the stored conversation, oldest first.
func (s *DefaultAdvisoryService) Messages(ctx context.Context, owner string) ([]models.ChatMessage, error) {
	return s.Contexts.Get(ctx, owner)
}

// SearchItems runs a grounded fashion search. Transport errors propagate;
// unparseable replies degrade to the canned advice with no items.
func (s *DefaultAdvisoryService) SearchItems(ctx context.Context, query string) (*models.SearchResponse, error) {
	raw, err := s.Gen.GenerateText(ctx, searchPrompt(query))
	if err != nil {
		return nil, err
	}
	return parseSearchResponse(raw), nil
}

// RelatedItems suggests items that pair with the named one.
func (s *DefaultAdvisoryService) RelatedItems(ctx context.Context, name string) ([]models.FashionItem, error) {
	raw, err := s.Gen.GenerateText(ctx, relatedPrompt(name))
	if err != nil {
		return nil, err
	}
	return parseRelatedItems(raw, name), nil
}
