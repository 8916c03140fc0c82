package model

// swagger:model Scholarship
type Scholarship struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Amount         int    `json:"amount"`
	PointsRequired int    `json:"pointsRequired"`
	IsActive       bool   `json:"isActive"`
}
