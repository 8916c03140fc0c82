package model

// swagger:model Module
type Module struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Duration    int    `json:"duration"` // minutes
	Points      int    `json:"points"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}
