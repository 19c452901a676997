package handlers

import (
	"akanuke/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Sessions user.SessionStore

	// Auth and profile endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GuestLoginHandler       gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc

	// Navigation endpoints
	GetNavStateHandler    gin.HandlerFunc
	NavigateHandler       gin.HandlerFunc
	SelectItemHandler     gin.HandlerFunc
	BackFromDetailHandler gin.HandlerFunc
	BackFromCoachHandler  gin.HandlerFunc
	ScrollHandler         gin.HandlerFunc
	RenderTargetHandler   gin.HandlerFunc

	// Collection endpoints
	GetFavoritesHandler   gin.HandlerFunc
	ToggleFavoriteHandler gin.HandlerFunc
	CheckFavoriteHandler  gin.HandlerFunc
	ClearFavoritesHandler gin.HandlerFunc
	GetHistoryHandler     gin.HandlerFunc
	RecordHistoryHandler  gin.HandlerFunc
	ClearHistoryHandler   gin.HandlerFunc
	GetSearchesHandler    gin.HandlerFunc
	RecordSearchHandler   gin.HandlerFunc
	RemoveSearchHandler   gin.HandlerFunc
	ClearSearchesHandler  gin.HandlerFunc

	// Advisory endpoints
	AnalyzeOutfitHandler     gin.HandlerFunc
	OpenCoachSessionHandler  gin.HandlerFunc
	SendCoachTurnHandler     gin.HandlerFunc
	ResetCoachSessionHandler gin.HandlerFunc
	GetCoachMessagesHandler  gin.HandlerFunc
	SearchItemsHandler       gin.HandlerFunc
	RelatedItemsHandler      gin.HandlerFunc

	// Catalog endpoints
	GetPickupItemsHandler     gin.HandlerFunc
	GetRankingItemsHandler    gin.HandlerFunc
	GetMarketplaceLinkHandler gin.HandlerFunc
}
