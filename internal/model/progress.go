package model

import (
	"time"
)

// UserProgress holds the single progress row for a (user, module) pair.
// IsCompleted is true exactly when Progress is 100.
//
// swagger:model UserProgress
type UserProgress struct {
	ID             int        `json:"id"`
	UserID         int        `json:"userId"`
	ModuleID       int        `json:"moduleId"`
	Progress       int        `json:"progress"` // 0-100
	IsCompleted    bool       `json:"isCompleted"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	LastAccessedAt time.Time  `json:"lastAccessedAt"`
}
