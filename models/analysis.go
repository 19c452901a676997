package models

// RecommendedItem is a buy-next suggestion attached to an outfit analysis.
type RecommendedItem struct {
	Name        string `json:"name"`
	Reason      string `json:"reason"`
	SearchQuery string `json:"searchQuery"`
}

// FashionAnalysis is the structured critique produced from one submitted
// outfit photo. Score is on a 0-100 scale.
type FashionAnalysis struct {
	Score            int               `json:"score"`
	Critique         string            `json:"critique"`
	Improvements     []string          `json:"improvements"`
	RecommendedItems []RecommendedItem `json:"recommendedItems"`
}
