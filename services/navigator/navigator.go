package navigator

import (
	"encoding/json"
	"fmt"
	"sync"

	"akanuke/models"
)

// ViewState is the closed set of navigable destinations.
type ViewState int

const (
	ViewHome ViewState = iota
	ViewCoach
	ViewSearch
	ViewFavorites
	ViewProfile
	ViewProductDetail
	ViewHistory
)

var viewNames = map[ViewState]string{
	ViewHome:          "HOME",
	ViewCoach:         "COACH",
	ViewSearch:        "SEARCH",
	ViewFavorites:     "FAVORITES",
	ViewProfile:       "PROFILE",
	ViewProductDetail: "PRODUCT_DETAIL",
	ViewHistory:       "HISTORY",
}

func (v ViewState) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return "HOME"
}

// ParseViewState maps a wire name back to a ViewState.
func ParseViewState(name string) (ViewState, error) {
	for v, n := range viewNames {
		if n == name {
			return v, nil
		}
	}
	return ViewHome, fmt.Errorf("unknown view state %q", name)
}

// MarshalJSON encodes the view state by name.
func (v ViewState) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a view state name.
func (v *ViewState) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseViewState(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ScrollDirection is a discrete scroll signal bubbled up from a view.
type ScrollDirection string

const (
	ScrollUp   ScrollDirection = "up"
	ScrollDown ScrollDirection = "down"
)

// Navigator is the single source of truth for what is on screen, plus the
// minimal history needed for the two distinct back gestures (detail-back
// and coach-back). None of its operations can fail: every input is drawn
// from the closed view enumeration or a previously selected item.
type Navigator struct {
	mu sync.Mutex

	current     ViewState
	previous    ViewState
	coachReturn ViewState

	selectedItem *models.FashionItem
	searchQuery  string
	navVisible   bool
}

// New returns a Navigator in its initial state: HOME, nav bar visible.
func New() *Navigator {
	return &Navigator{
		current:     ViewHome,
		previous:    ViewHome,
		coachReturn: ViewHome,
		navVisible:  true,
	}
}

// Navigate switches the current view. Any navigation reopens the nav bar.
// Entering COACH snapshots the view being left as the coach back-anchor.
func (n *Navigator) Navigate(target ViewState) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.navigateLocked(target)
}

func (n *Navigator) navigateLocked(target ViewState) {
	if target == ViewCoach {
		n.coachReturn = n.current
	}
	n.current = target
	n.navVisible = true
}

// NavigateToSearch enters the search view carrying an initial query,
// consumed by the next render.
func (n *Navigator) NavigateToSearch(query string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.searchQuery = query
	n.navigateLocked(ViewSearch)
}

// SelectItem stores the selected item and enters the detail view. The
// back-target is snapshotted only when coming from outside PRODUCT_DETAIL,
// so chained detail-to-detail navigation keeps the original origin.
func (n *Navigator) SelectItem(item models.FashionItem) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.selectedItem = &item
	if n.current != ViewProductDetail {
		n.previous = n.current
	}
	n.navigateLocked(ViewProductDetail)
}

// BackFromDetail returns to the view the detail flow was entered from.
func (n *Navigator) BackFromDetail() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.navigateLocked(n.previous)
}

// BackFromCoach returns to the view the coach flow was entered from.
func (n *Navigator) BackFromCoach() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.navigateLocked(n.coachReturn)
}

// OnScrollDirection hides the nav bar on downward scroll and shows it on
// upward scroll. Repeated same-direction signals are no-ops.
func (n *Navigator) OnScrollDirection(direction ScrollDirection) {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch {
	case direction == ScrollDown && n.navVisible:
		n.navVisible = false
	case direction == ScrollUp && !n.navVisible:
		n.navVisible = true
	}
}

// Reset restores the initial state. Used on logout so the next login
// starts at HOME.
func (n *Navigator) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = ViewHome
	n.previous = ViewHome
	n.coachReturn = ViewHome
	n.selectedItem = nil
	n.searchQuery = ""
	n.navVisible = true
}

// RenderTarget resolves what to show for the current state. A detail view
// with no selected item falls back to HOME rather than rendering broken.
func (n *Navigator) RenderTarget() (ViewState, *models.FashionItem) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == ViewProductDetail && n.selectedItem == nil {
		return ViewHome, nil
	}
	if n.current == ViewProductDetail {
		item := *n.selectedItem
		return ViewProductDetail, &item
	}
	return n.current, nil
}

// State is a read-only snapshot of the navigation context.
type State struct {
	CurrentView     ViewState           `json:"currentView"`
	PreviousView    ViewState           `json:"previousView"`
	CoachReturnView ViewState           `json:"coachReturnView"`
	SelectedItem    *models.FashionItem `json:"selectedItem,omitempty"`
	SearchQuery     string              `json:"searchQuery,omitempty"`
	IsNavVisible    bool                `json:"isNavVisible"`
}

// Snapshot returns the current navigation context.
func (n *Navigator) Snapshot() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	st := State{
		CurrentView:     n.current,
		PreviousView:    n.previous,
		CoachReturnView: n.coachReturn,
		SearchQuery:     n.searchQuery,
		IsNavVisible:    n.navVisible,
	}
	if n.selectedItem != nil {
		item := *n.selectedItem
		st.SelectedItem = &item
	}
	return st
}
