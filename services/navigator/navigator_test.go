package navigator

import (
	"testing"

	"akanuke/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id string) models.FashionItem {
	return models.FashionItem{
		ID:       id,
		Name:     "テストアイテム",
		Brand:    "Test Brand",
		ImageURL: "https://example.com/" + id + ".jpg",
	}
}

func TestNavigatorInitialState(t *testing.T) {
	nav := New()
	st := nav.Snapshot()

	assert.Equal(t, ViewHome, st.CurrentView)
	assert.Equal(t, ViewHome, st.PreviousView)
	assert.Equal(t, ViewHome, st.CoachReturnView)
	assert.Nil(t, st.SelectedItem)
	assert.True(t, st.IsNavVisible)
}

func TestNavigate(t *testing.T) {
	t.Run("reopens nav bar", func(t *testing.T) {
		nav := New()
		nav.OnScrollDirection(ScrollDown)
		assert.False(t, nav.Snapshot().IsNavVisible)

		nav.Navigate(ViewFavorites)
		assert.True(t, nav.Snapshot().IsNavVisible)
	})

	t.Run("entering coach snapshots the origin", func(t *testing.T) {
		nav := New()
		nav.Navigate(ViewFavorites)
		nav.Navigate(ViewCoach)

		st := nav.Snapshot()
		assert.Equal(t, ViewCoach, st.CurrentView)
		assert.Equal(t, ViewFavorites, st.CoachReturnView)

		nav.BackFromCoach()
		assert.Equal(t, ViewFavorites, nav.Snapshot().CurrentView)
	})

	t.Run("coach origin updates on every entry", func(t *testing.T) {
		nav := New()
		nav.Navigate(ViewCoach)
		nav.Navigate(ViewProfile)
		nav.Navigate(ViewCoach)

		assert.Equal(t, ViewProfile, nav.Snapshot().CoachReturnView)
	})
}

func TestNavigateToSearch(t *testing.T) {
	nav := New()
	nav.NavigateToSearch("白シャツ")

	st := nav.Snapshot()
	assert.Equal(t, ViewSearch, st.CurrentView)
	assert.Equal(t, "白シャツ", st.SearchQuery)
}

func TestSelectItem(t *testing.T) {
	t.Run("snapshots origin and enters detail", func(t *testing.T) {
		nav := New()
		nav.Navigate(ViewSearch)
		nav.SelectItem(testItem("item-1"))

		st := nav.Snapshot()
		assert.Equal(t, ViewProductDetail, st.CurrentView)
		assert.Equal(t, ViewSearch, st.PreviousView)
		require.NotNil(t, st.SelectedItem)
		assert.Equal(t, "item-1", st.SelectedItem.ID)
	})

	t.Run("chained detail keeps the original origin", func(t *testing.T) {
		nav := New()
		nav.Navigate(ViewHistory)
		nav.SelectItem(testItem("item-1"))
		nav.SelectItem(testItem("item-2"))
		nav.SelectItem(testItem("item-3"))

		st := nav.Snapshot()
		assert.Equal(t, "item-3", st.SelectedItem.ID)
		assert.Equal(t, ViewHistory, st.PreviousView)

		nav.BackFromDetail()
		assert.Equal(t, ViewHistory, nav.Snapshot().CurrentView)
	})
}

func TestOnScrollDirection(t *testing.T) {
	nav := New()

	nav.OnScrollDirection(ScrollDown)
	assert.False(t, nav.Snapshot().IsNavVisible)

	// Repeated same-direction signals are no-ops.
	nav.OnScrollDirection(ScrollDown)
	assert.False(t, nav.Snapshot().IsNavVisible)

	nav.OnScrollDirection(ScrollUp)
	assert.True(t, nav.Snapshot().IsNavVisible)

	nav.OnScrollDirection(ScrollUp)
	assert.True(t, nav.Snapshot().IsNavVisible)
}

func TestRenderTarget(t *testing.T) {
	t.Run("plain view", func(t *testing.T) {
		nav := New()
		nav.Navigate(ViewProfile)

		view, item := nav.RenderTarget()
		assert.Equal(t, ViewProfile, view)
		assert.Nil(t, item)
	})

	t.Run("detail with an item", func(t *testing.T) {
		nav := New()
		nav.SelectItem(testItem("item-1"))

		view, item := nav.RenderTarget()
		assert.Equal(t, ViewProductDetail, view)
		require.NotNil(t, item)
		assert.Equal(t, "item-1", item.ID)
	})

	t.Run("detail without an item falls back to home", func(t *testing.T) {
		nav := New()
		nav.Navigate(ViewProductDetail)

		view, item := nav.RenderTarget()
		assert.Equal(t, ViewHome, view)
		assert.Nil(t, item)
	})
}

func TestReset(t *testing.T) {
	nav := New()
	nav.NavigateToSearch("デニム")
	nav.SelectItem(testItem("item-1"))
	nav.OnScrollDirection(ScrollDown)

	nav.Reset()

	st := nav.Snapshot()
	assert.Equal(t, ViewHome, st.CurrentView)
	assert.Equal(t, ViewHome, st.PreviousView)
	assert.Equal(t, ViewHome, st.CoachReturnView)
	assert.Nil(t, st.SelectedItem)
	assert.Empty(t, st.SearchQuery)
	assert.True(t, st.IsNavVisible)
}

func TestViewStateJSON(t *testing.T) {
	for v, name := range viewNames {
		parsed, err := ParseViewState(name)
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseViewState("NOWHERE")
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	a := reg.Get("user-a")
	b := reg.Get("user-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, reg.Get("user-a"))

	a.Navigate(ViewCoach)
	reg.Drop("user-a")
	assert.Equal(t, ViewHome, reg.Get("user-a").Snapshot().CurrentView)
}
