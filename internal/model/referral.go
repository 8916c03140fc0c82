package model

import (
	"time"
)

// swagger:model Referral
type Referral struct {
	ID             int       `json:"id"`
	ReferrerUserID int       `json:"referrerUserId"`
	ReferredUserID int       `json:"referredUserId"`
	IsSchool       bool      `json:"isSchool"`
	CommissionPaid bool      `json:"commissionPaid"`
	CreatedAt      time.Time `json:"createdAt"`
}
