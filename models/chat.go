package models

import "time"

// Chat roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Recommendation is an item suggestion embedded in an assistant reply.
type Recommendation struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// ChatMessage is a single turn in an advisory session.
type ChatMessage struct {
	ID              string           `json:"id"`
	Role            string           `json:"role"`
	Text            string           `json:"text"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Timestamp       time.Time        `json:"timestamp"`
}
