package model

import (
	"time"
)

// swagger:model CareerRecommendation
type CareerRecommendation struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MatchScore      int       `json:"matchScore"` // 0-100
	FieldOfStudy    string    `json:"fieldOfStudy"`
	AvgSalary       int       `json:"avgSalary,omitempty"`
	EduRequirements string    `json:"eduRequirements,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
