package advisory

import (
	"encoding/json"
	"fmt"
	"strings"

	"akanuke/models"
	"akanuke/services/catalog"
)

// maxInlineRecommendations bounds the item cards attached to one reply.
const maxInlineRecommendations = 2

// cleanJSONBlock strips markdown code fences the model sometimes wraps
// around raw JSON despite instructions.
func cleanJSONBlock(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// embeddedReply is the optional structured form of an assistant reply.
type embeddedReply struct {
	Text             string `json:"text"`
	RecommendedItems []struct {
		Name        string `json:"name"`
		ImagePrompt string `json:"imagePrompt"`
	} `json:"recommendedItems"`
}

// parseAssistantReply extracts the display text and any embedded item
// recommendations from a raw reply. Structure is a bonus, never required:
// when the reply is not valid JSON the raw text is returned as-is.
func parseAssistantReply(raw string) (string, []models.Recommendation) {
	if raw == "" {
		return emptyReply, nil
	}

	var parsed embeddedReply
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &parsed); err != nil {
		return raw, nil
	}

	text := parsed.Text
	if text == "" {
		text = emptyReply
	}

	var recs []models.Recommendation
	for i, item := range parsed.RecommendedItems {
		if i >= maxInlineRecommendations {
			break
		}
		recs = append(recs, models.Recommendation{
			Name:     item.Name,
			ImageURL: catalog.ImageURLIndexed(item.ImagePrompt, i),
		})
	}
	return text, recs
}

// parseSearchResponse decodes the grounded-search payload. A response
// that fails to parse degrades to a canned apology with no items.
func parseSearchResponse(raw string) *models.SearchResponse {
	var resp models.SearchResponse
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &resp); err != nil {
		return &models.SearchResponse{Advice: searchFallbackAdvice, Items: []models.SearchItem{}}
	}
	if resp.Items == nil {
		resp.Items = []models.SearchItem{}
	}
	return &resp
}

// relatedPayload is the wire form of a related-items reply.
type relatedPayload struct {
	Items []models.SearchItem `json:"items"`
}

// parseRelatedItems decodes related-item suggestions into fashion items
// with generated thumbnails. Unparseable responses yield no items.
func parseRelatedItems(raw, sourceName string) []models.FashionItem {
	var payload relatedPayload
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &payload); err != nil {
		return nil
	}

	items := make([]models.FashionItem, 0, len(payload.Items))
	for i, it := range payload.Items {
		items = append(items, models.FashionItem{
			ID:          relatedID(sourceName, i),
			Name:        it.Name,
			Brand:       it.Brand,
			Description: it.Description,
			ImageURL:    catalog.ImageURLIndexed(it.ImagePrompt, i),
			SearchQuery: it.SearchQuery,
			Price:       it.Price,
		})
	}
	return items
}

func relatedID(sourceName string, index int) string {
	return fmt.Sprintf("related-%s-%d", sourceName, index)
}
