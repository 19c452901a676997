package advisory

import (
	"context"
	"errors"
	"testing"

	collectionRepo "akanuke/database/repository/collection"
	userRepo "akanuke/database/repository/user"
	"akanuke/models"
	"akanuke/services/navigator"
	"akanuke/services/storage"
	"akanuke/services/user"
	"akanuke/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "user-1"

func emptyProfile() models.UserProfile {
	return models.UserProfile{}
}

// fakeGenerator scripts the generative backend.
type fakeGenerator struct {
	analyzeRaw string
	analyzeErr error
	chatRaw    string
	chatErr    error
	textRaw    string
	textErr    error

	analyzedJpeg []byte
	lastPersona  string
	lastHistory  []models.ChatMessage
}

func (f *fakeGenerator) AnalyzeOutfit(ctx context.Context, jpeg []byte) (string, error) {
	f.analyzedJpeg = jpeg
	return f.analyzeRaw, f.analyzeErr
}

func (f *fakeGenerator) ChatReply(ctx context.Context, persona string, history []models.ChatMessage, message string) (string, error) {
	f.lastPersona = persona
	f.lastHistory = history
	return f.chatRaw, f.chatErr
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.textRaw, f.textErr
}

func newTestAdvisory(gen *fakeGenerator) (*DefaultAdvisoryService, *storage.MemoryPhotoStore, *user.DefaultUserService) {
	users := &user.DefaultUserService{
		Repo:     userRepo.NewMemoryUserRepo(),
		Store:    collectionRepo.NewMemoryStore(),
		Sessions: user.NewMemorySessionStore(),
		Nav:      navigator.NewRegistry(),
	}
	photos := storage.NewMemoryPhotoStore()
	svc := NewDefaultAdvisoryService(gen, NewMemoryContextStore(), photos, users)
	return svc, photos, users
}

func setProfile(t *testing.T, users *user.DefaultUserService, profile models.UserProfile) {
	t.Helper()
	require.NoError(t, users.Store.Save(context.Background(), owner, utils.KeyUserProfile, profile))
}

const analysisPayload = `{
	"score": 62,
	"critique": "惜しい。サイズ感が全部ゆるい。",
	"improvements": ["ジャストサイズを選べ", "靴を磨け", "髪を整えろ"],
	"recommendedItems": [
		{"name": "白Tシャツ", "reason": "何にでも合う", "searchQuery": "白Tシャツ 無地"}
	]
}`

func TestAnalyzeImage(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh photo is retained and analyzed", func(t *testing.T) {
		gen := &fakeGenerator{analyzeRaw: analysisPayload}
		svc, photos, _ := newTestAdvisory(gen)

		analysis, err := svc.AnalyzeImage(ctx, owner, []byte("jpeg-bytes"))
		require.NoError(t, err)
		assert.Equal(t, 62, analysis.Score)
		require.Len(t, analysis.Improvements, 3)
		require.Len(t, analysis.RecommendedItems, 1)
		assert.Equal(t, "白Tシャツ", analysis.RecommendedItems[0].Name)

		retained, err := photos.Load(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), retained)
	})

	t.Run("nil bytes re-analyze the retained photo", func(t *testing.T) {
		gen := &fakeGenerator{analyzeRaw: analysisPayload}
		svc, photos, _ := newTestAdvisory(gen)
		require.NoError(t, photos.Save(ctx, owner, []byte("earlier-upload")))

		_, err := svc.AnalyzeImage(ctx, owner, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte("earlier-upload"), gen.analyzedJpeg)
	})

	t.Run("nil bytes with nothing retained fail", func(t *testing.T) {
		gen := &fakeGenerator{analyzeRaw: analysisPayload}
		svc, _, _ := newTestAdvisory(gen)

		_, err := svc.AnalyzeImage(ctx, owner, nil)
		var failed AnalysisFailedError
		assert.ErrorAs(t, err, &failed)
	})

	t.Run("backend failure keeps the photo retained", func(t *testing.T) {
		gen := &fakeGenerator{analyzeErr: errors.New("backend down")}
		svc, photos, _ := newTestAdvisory(gen)

		_, err := svc.AnalyzeImage(ctx, owner, []byte("jpeg-bytes"))
		var failed AnalysisFailedError
		require.ErrorAs(t, err, &failed)

		// The retry path works without a re-upload.
		retained, err := photos.Load(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), retained)
	})

	t.Run("unparseable critique fails", func(t *testing.T) {
		gen := &fakeGenerator{analyzeRaw: "not json"}
		svc, _, _ := newTestAdvisory(gen)

		_, err := svc.AnalyzeImage(ctx, owner, []byte("jpeg-bytes"))
		var failed AnalysisFailedError
		assert.ErrorAs(t, err, &failed)
	})
}

func TestOpenSession(t *testing.T) {
	ctx := context.Background()

	t.Run("greets from the profile", func(t *testing.T) {
		gen := &fakeGenerator{}
		svc, _, users := newTestAdvisory(gen)
		setProfile(t, users, models.UserProfile{Name: "Taro", Height: "170"})

		msg, err := svc.OpenSession(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, models.RoleModel, msg.Role)
		assert.Contains(t, msg.Text, "Taro")
		assert.Contains(t, msg.Text, "170cm")
	})

	t.Run("reopening resumes the existing conversation", func(t *testing.T) {
		gen := &fakeGenerator{chatRaw: "おう"}
		svc, _, _ := newTestAdvisory(gen)

		_, err := svc.OpenSession(ctx, owner)
		require.NoError(t, err)
		reply, err := svc.SendTurn(ctx, owner, "よろしく")
		require.NoError(t, err)

		resumed, err := svc.OpenSession(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, reply.ID, resumed.ID)

		messages, err := svc.Messages(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, messages, 3)
	})
}

func TestSendTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("persona carries the profile", func(t *testing.T) {
		gen := &fakeGenerator{chatRaw: "背筋を伸ばせ"}
		svc, _, users := newTestAdvisory(gen)
		setProfile(t, users, models.UserProfile{Height: "170", Concerns: "猫背"})

		reply, err := svc.SendTurn(ctx, owner, "姿勢が悪いんだ")
		require.NoError(t, err)
		assert.Equal(t, "背筋を伸ばせ", reply.Text)
		assert.Contains(t, gen.lastPersona, "身長: 170cm")
		assert.Contains(t, gen.lastPersona, "悩み: 猫背")
	})

	t.Run("both turns are persisted", func(t *testing.T) {
		gen := &fakeGenerator{chatRaw: "おう"}
		svc, _, _ := newTestAdvisory(gen)

		_, err := svc.SendTurn(ctx, owner, "こんにちは")
		require.NoError(t, err)

		messages, err := svc.Messages(ctx, owner)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, models.RoleUser, messages[0].Role)
		assert.Equal(t, "こんにちは", messages[0].Text)
		assert.Equal(t, models.RoleModel, messages[1].Role)
	})

	t.Run("backend failure yields the fallback reply, not an error", func(t *testing.T) {
		gen := &fakeGenerator{chatErr: errors.New("backend down")}
		svc, _, _ := newTestAdvisory(gen)

		reply, err := svc.SendTurn(ctx, owner, "聞こえるか？")
		require.NoError(t, err)
		assert.Equal(t, fallbackReply, reply.Text)

		// The failed turn still lands in the conversation.
		messages, err := svc.Messages(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, messages, 2)
	})

	t.Run("structured reply carries recommendations", func(t *testing.T) {
		gen := &fakeGenerator{chatRaw: `{"text": "これだ", "recommendedItems": [{"name": "白シャツ", "imagePrompt": "white shirt"}]}`}
		svc, _, _ := newTestAdvisory(gen)

		reply, err := svc.SendTurn(ctx, owner, "何を買えばいい？")
		require.NoError(t, err)
		assert.Equal(t, "これだ", reply.Text)
		require.Len(t, reply.Recommendations, 1)
		assert.Equal(t, "白シャツ", reply.Recommendations[0].Name)
	})
}

func TestResetSession(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{chatRaw: "おう"}
	svc, _, _ := newTestAdvisory(gen)

	_, err := svc.OpenSession(ctx, owner)
	require.NoError(t, err)
	_, err = svc.SendTurn(ctx, owner, "リセット前")
	require.NoError(t, err)

	greeting, err := svc.ResetSession(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, models.RoleModel, greeting.Role)

	messages, err := svc.Messages(ctx, owner)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, greeting.ID, messages[0].ID)
}

func TestSearchItems(t *testing.T) {
	ctx := context.Background()

	t.Run("transport errors propagate", func(t *testing.T) {
		gen := &fakeGenerator{textErr: errors.New("backend down")}
		svc, _, _ := newTestAdvisory(gen)

		_, err := svc.SearchItems(ctx, "白シャツ")
		assert.Error(t, err)
	})

	t.Run("unparseable replies degrade to the canned advice", func(t *testing.T) {
		gen := &fakeGenerator{textRaw: "散文"}
		svc, _, _ := newTestAdvisory(gen)

		resp, err := svc.SearchItems(ctx, "白シャツ")
		require.NoError(t, err)
		assert.Equal(t, searchFallbackAdvice, resp.Advice)
		assert.Empty(t, resp.Items)
	})
}

func TestRelatedItems(t *testing.T) {
	ctx := context.Background()
	gen := &fakeGenerator{textRaw: `{"items": [{"name": "ベルト", "brand": "ノーブランド", "description": "締まる", "imagePrompt": "belt", "searchQuery": "ベルト"}]}`}
	svc, _, _ := newTestAdvisory(gen)

	items, err := svc.RelatedItems(ctx, "黒スキニー")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "related-黒スキニー-0", items[0].ID)
}
