package model

import (
	"time"
)

// swagger:model Achievement
type Achievement struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
	// Requirement is matched by substring against completed module titles.
	Requirement string `json:"requirement"`
}

// swagger:model UserAchievement
type UserAchievement struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	AchievementID int       `json:"achievementId"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}
