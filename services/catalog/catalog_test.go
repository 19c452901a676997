package catalog

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURL(t *testing.T) {
	t.Run("deterministic for the same prompt", func(t *testing.T) {
		assert.Equal(t, ImageURL("white shirt"), ImageURL("white shirt"))
	})

	t.Run("carries the fixed rendering parameters", func(t *testing.T) {
		u, err := url.Parse(ImageURL("white shirt"))
		require.NoError(t, err)
		assert.Equal(t, "pollinations.ai", u.Host)
		assert.Equal(t, "400", u.Query().Get("width"))
		assert.Equal(t, "500", u.Query().Get("height"))
		assert.Equal(t, "flux", u.Query().Get("model"))
		assert.NotEmpty(t, u.Query().Get("seed"))
	})

	t.Run("prompts are escaped", func(t *testing.T) {
		u := ImageURL("白シャツ & デニム")
		assert.NotContains(t, u, " ")
		assert.NotContains(t, u, "&seed=0&") // ampersand in prompt must not split params
	})

	t.Run("index varies the seed for repeated prompts", func(t *testing.T) {
		assert.NotEqual(t, ImageURLIndexed("belt", 0), ImageURLIndexed("belt", 1))
		assert.Equal(t, ImageURLIndexed("belt", 0), ImageURL("belt"))
	})
}

func TestMarketplaceURL(t *testing.T) {
	u := MarketplaceURL("白シャツ")
	assert.True(t, strings.HasPrefix(u, "https://www.google.com/search?q="))

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "白シャツ メンズファッション", parsed.Query().Get("q"))
}

func TestCuratedShelves(t *testing.T) {
	pickup := PickupItems()
	ranking := RankingItems()

	require.NotEmpty(t, pickup)
	require.NotEmpty(t, ranking)

	seen := map[string]bool{}
	for _, it := range append(pickup, ranking...) {
		assert.NotEmpty(t, it.ID)
		assert.NotEmpty(t, it.Name)
		assert.NotEmpty(t, it.ImageURL)
		assert.NotEmpty(t, it.SearchQuery)
		assert.False(t, seen[it.ID], "duplicate shelf item ID %s", it.ID)
		seen[it.ID] = true
	}
}
