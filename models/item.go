package models

// FashionItem is a single browsable item. Identity is the ID: two items
// with the same ID are the same entity for favorite and history purposes
// regardless of the other fields.
type FashionItem struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Brand       string `json:"brand" bson:"brand"`
	ImageURL    string `json:"imageUrl" bson:"imageUrl"`
	SearchQuery string `json:"searchQuery" bson:"searchQuery"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Price       string `json:"price,omitempty" bson:"price,omitempty"`
}

// SearchItem is one result row from the advisory search.
type SearchItem struct {
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description"`
	ImagePrompt string `json:"imagePrompt"`
	SearchQuery string `json:"searchQuery"`
}

// SearchResponse is the advisory search payload: a short piece of advice
// plus the matched items.
type SearchResponse struct {
	Advice string       `json:"advice"`
	Items  []SearchItem `json:"items"`
}
