package advisory

import (
	"fmt"
	"strings"

	"akanuke/models"
)

// Persona and prompt text for the coaching assistant. The persona is a
// blunt but supportive "big brother" stylist speaking casual Japanese.

const diagnosisPrompt = `あなたは厳しくも頼れるプロのメンズファッションスタイリスト（頼れる兄貴分）です。
「垢抜け」を目指す男子学生のために、この写真の服装を診断してください。

以下の形式で日本語で出力してください：
1. 100点満点でのスコア採点
2. 短くパンチの効いた辛口かつ愛のある批評
3. 具体的な改善点を3つ
4. 買い足すべきおすすめアイテムを3つ（アイテム名、選定理由、Amazon検索用キーワード）

JSON形式で返してください。`

const personaBase = `あなたは「アニキ」というペルソナです。男子学生にとっての、かっこよくて頼れる先輩・兄貴分として振る舞ってください。
ユーザーの目標は、ファッションや身だしなみを改善し、自信を持ち、「垢抜ける」ことです。

ペルソナの指針:
- 口調: 男らしく、フランクで、親しみやすい。「〜だろ」「〜じゃねぇか？」「任せろ」などの表現を使う。敬語は使わない。
- 態度: 基本は応援しているが、ダメなところははっきり指摘する。でも最後は必ず背中を押す。
- 内容: 長文になりすぎないようにする。具体的で実行可能なアドバイスをする（服、髪型、スキンケア、筋トレ、マインドセットなど）。
- 日本語で会話する。`

// fallbackReply is returned when a chat turn cannot reach the backend.
const fallbackReply = "ちょっと電波が悪いみたいだ。もう一回頼む。"

// emptyReply stands in when the backend answers with no usable text.
const emptyReply = "悪い、ちょっと考え事してた。もう一回言ってくれ。"

// searchFallbackAdvice is used when a search response cannot be parsed.
const searchFallbackAdvice = "すまん、うまく情報を整理できなかった。もう一回検索してみてくれ。"

// personaFor appends the stored profile to the persona so the coach can
// tailor advice. The profile changes tone and content, never the contract.
func personaFor(profile models.UserProfile) string {
	var b strings.Builder
	b.WriteString(personaBase)

	var facts []string
	if profile.Name != "" {
		facts = append(facts, "名前: "+profile.Name)
	}
	if profile.Height != "" {
		facts = append(facts, "身長: "+profile.Height+"cm")
	}
	if profile.Weight != "" {
		facts = append(facts, "体重: "+profile.Weight+"kg")
	}
	if profile.Age != "" {
		facts = append(facts, "年齢: "+profile.Age)
	}
	if profile.SkinType != "" {
		facts = append(facts, "肌質: "+profile.SkinType)
	}
	if profile.HairStyle != "" {
		facts = append(facts, "髪型: "+profile.HairStyle)
	}
	if profile.Concerns != "" {
		facts = append(facts, "悩み: "+profile.Concerns)
	}
	if len(facts) > 0 {
		b.WriteString("\n\nユーザーのプロフィール（アドバイスに反映すること）:\n")
		b.WriteString(strings.Join(facts, "\n"))
	}
	return b.String()
}

// greetingFor builds the session-opening message from the profile.
func greetingFor(profile models.UserProfile) string {
	switch {
	case profile.Name != "" && profile.Height != "":
		return fmt.Sprintf("よう、%s！アニキだ。お前の身長（%scm）に合わせたコーデや悩み、なんでも相談してくれ。", profile.Name, profile.Height)
	case profile.Name != "":
		return fmt.Sprintf("よう、%s！アニキだ。お前にぴったりのコーデや悩み、なんでも相談してくれ。", profile.Name)
	case profile.Height != "":
		return fmt.Sprintf("よう！身長%scmのアニキ流着こなし術、教えるぜ。何でも聞いてくれ。", profile.Height)
	default:
		return "よう！アニキだ。ファッションの悩み、コーデの診断、なんでも任せろ。"
	}
}

// searchPrompt asks for raw JSON search results in the persona's voice.
func searchPrompt(query string) string {
	return fmt.Sprintf(`日本の男子学生向けファッション検索です。
ユーザーの検索クエリ: "%s"

トレンドや具体的なアイテムを調査し、以下のJSONフォーマットのみを出力してください。
Markdownのコードブロックは不要です。生JSONで返してください。

{
  "advice": "トレンドや選び方に関する短いアドバイス（日本語、アニキ口調）",
  "items": [
    {
      "name": "アイテム名（具体的、日本語）",
      "brand": "おすすめブランド名（なければ'ノーブランド'やカテゴリー名）",
      "price": "推定価格帯（例: ¥3,000〜）",
      "description": "アイテムの魅力や特徴（30文字程度、日本語）",
      "imagePrompt": "A high quality fashion photography of [Item Name], [Color], [Style], photorealistic, 8k, street snap style",
      "searchQuery": "AmazonやZOZOで検索するためのキーワード"
    }
  ]
}

imagePromptは、そのアイテムの画像を生成AIで作成するための英語のプロンプトです。
itemsは5件以上リストアップしてください。`, query)
}

// relatedPrompt asks for items that pair well with the named one.
func relatedPrompt(name string) string {
	return fmt.Sprintf(`"%s" に合わせやすい、相性のいいメンズファッションアイテムを4件提案してください。
以下のJSONフォーマットのみを出力してください。Markdownのコードブロックは不要です。

{
  "items": [
    {
      "name": "アイテム名（日本語）",
      "brand": "ブランド名またはカテゴリー名",
      "description": "合わせ方のポイント（30文字程度、日本語）",
      "imagePrompt": "A high quality fashion photography of the item, photorealistic, 8k",
      "searchQuery": "検索用キーワード"
    }
  ]
}`, name)
}
