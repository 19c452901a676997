package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}

func TestParseAssistantReply(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		text, recs := parseAssistantReply("おう、いい感じだな。")
		assert.Equal(t, "おう、いい感じだな。", text)
		assert.Nil(t, recs)
	})

	t.Run("empty reply gets the canned stand-in", func(t *testing.T) {
		text, recs := parseAssistantReply("")
		assert.Equal(t, emptyReply, text)
		assert.Nil(t, recs)
	})

	t.Run("structured reply carries recommendations", func(t *testing.T) {
		raw := "```json\n" + `{
			"text": "これを試せ",
			"recommendedItems": [
				{"name": "白Tシャツ", "imagePrompt": "white t-shirt"},
				{"name": "黒スキニー", "imagePrompt": "black skinny jeans"}
			]
		}` + "\n```"

		text, recs := parseAssistantReply(raw)
		assert.Equal(t, "これを試せ", text)
		require.Len(t, recs, 2)
		assert.Equal(t, "白Tシャツ", recs[0].Name)
		assert.Contains(t, recs[0].ImageURL, "pollinations.ai")
	})

	t.Run("recommendations are capped", func(t *testing.T) {
		raw := `{
			"text": "全部買え",
			"recommendedItems": [
				{"name": "a", "imagePrompt": "a"},
				{"name": "b", "imagePrompt": "b"},
				{"name": "c", "imagePrompt": "c"},
				{"name": "d", "imagePrompt": "d"}
			]
		}`

		_, recs := parseAssistantReply(raw)
		assert.Len(t, recs, maxInlineRecommendations)
	})

	t.Run("structured reply with empty text gets the stand-in", func(t *testing.T) {
		text, _ := parseAssistantReply(`{"text": ""}`)
		assert.Equal(t, emptyReply, text)
	})
}

func TestParseSearchResponse(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw := `{
			"advice": "無地を選べ",
			"items": [
				{"name": "オックスフォードシャツ", "brand": "無印良品", "description": "鉄板", "imagePrompt": "oxford shirt", "searchQuery": "オックスフォードシャツ 白"}
			]
		}`

		resp := parseSearchResponse(raw)
		assert.Equal(t, "無地を選べ", resp.Advice)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "オックスフォードシャツ", resp.Items[0].Name)
	})

	t.Run("unparseable payload degrades to the canned advice", func(t *testing.T) {
		resp := parseSearchResponse("モデルが気まぐれに書いた散文")
		assert.Equal(t, searchFallbackAdvice, resp.Advice)
		assert.Empty(t, resp.Items)
		assert.NotNil(t, resp.Items)
	})

	t.Run("missing items decodes to an empty slice", func(t *testing.T) {
		resp := parseSearchResponse(`{"advice": "ok"}`)
		assert.NotNil(t, resp.Items)
	})
}

func TestParseRelatedItems(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw := `{"items": [
			{"name": "ベルト", "brand": "ノーブランド", "description": "締まる", "imagePrompt": "leather belt", "searchQuery": "レザーベルト"},
			{"name": "ローファー", "brand": "GU", "description": "足元", "imagePrompt": "loafers", "searchQuery": "ローファー"}
		]}`

		items := parseRelatedItems(raw, "黒スキニー")
		require.Len(t, items, 2)
		assert.Equal(t, "related-黒スキニー-0", items[0].ID)
		assert.Equal(t, "related-黒スキニー-1", items[1].ID)
		assert.Equal(t, "ベルト", items[0].Name)
		assert.Contains(t, items[0].ImageURL, "pollinations.ai")
	})

	t.Run("unparseable payload yields no items", func(t *testing.T) {
		assert.Nil(t, parseRelatedItems("not json", "x"))
	})
}

func TestPersonaFor(t *testing.T) {
	t.Run("empty profile is the bare persona", func(t *testing.T) {
		persona := personaFor(emptyProfile())
		assert.Equal(t, personaBase, persona)
	})

	t.Run("profile facts are appended", func(t *testing.T) {
		p := emptyProfile()
		p.Name = "Taro"
		p.Height = "170"
		p.Concerns = "猫背"

		persona := personaFor(p)
		assert.Contains(t, persona, "名前: Taro")
		assert.Contains(t, persona, "身長: 170cm")
		assert.Contains(t, persona, "悩み: 猫背")
		assert.NotContains(t, persona, "体重")
	})
}

func TestGreetingFor(t *testing.T) {
	p := emptyProfile()
	assert.Contains(t, greetingFor(p), "アニキだ")

	p.Height = "170"
	assert.Contains(t, greetingFor(p), "170cm")

	p.Name = "Taro"
	greeting := greetingFor(p)
	assert.Contains(t, greeting, "Taro")
	assert.Contains(t, greeting, "170cm")

	p.Height = ""
	greeting = greetingFor(p)
	assert.Contains(t, greeting, "Taro")
	assert.NotContains(t, greeting, "cm")
}
