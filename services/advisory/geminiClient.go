package advisory

import (
	"context"
	"fmt"
	"strings"

	"akanuke/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	diagnosisModel = "gemini-2.5-flash"
	chatModel      = "gemini-2.5-flash"
	searchModel    = "gemini-2.5-flash"
)

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates the Gemini-backed generator.
func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}
	return &GeminiClient{client: client}
}

// analysisSchema constrains the diagnosis response to the fixed critique
// shape the rest of the app relies on.
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score": {
				Type:        genai.TypeInteger,
				Description: "100点満点のファッションスコア",
			},
			"critique": {
				Type:        genai.TypeString,
				Description: "全体の印象と批評（日本語）",
			},
			"improvements": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "具体的な改善アドバイスのリスト（日本語）",
			},
			"recommendedItems": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString, Description: "アイテム名（日本語）"},
						"reason":      {Type: genai.TypeString, Description: "なぜこのアイテムが必要か（日本語）"},
						"searchQuery": {Type: genai.TypeString, Description: "Amazon検索用の短いキーワード（日本語）"},
					},
					Required: []string{"name", "reason", "searchQuery"},
				},
			},
		},
		Required: []string{"score", "critique", "improvements", "recommendedItems"},
	}
}

// AnalyzeOutfit sends the photo with the diagnosis instruction and a
// response schema, returning the raw JSON text.
func (g *GeminiClient) AnalyzeOutfit(ctx context.Context, jpeg []byte) (string, error) {
	model := g.client.GenerativeModel(diagnosisModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = analysisSchema()

	resp, err := model.GenerateContent(ctx, genai.ImageData("jpeg", jpeg), genai.Text(diagnosisPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini analyze error: %w", err)
	}
	return collectText(resp), nil
}

// ChatReply replays the stored conversation into a chat session carrying
// the persona as system instruction and sends the new message.
func (g *GeminiClient) ChatReply(ctx context.Context, persona string, history []models.ChatMessage, message string) (string, error) {
	model := g.client.GenerativeModel(chatModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(persona)}}

	cs := model.StartChat()
	for _, msg := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  msg.Role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat error: %w", err)
	}
	return collectText(resp), nil
}

// GenerateText runs a single-shot text generation.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(searchModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return collectText(resp), nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
