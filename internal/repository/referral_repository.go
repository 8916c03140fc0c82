package repository

import (
	"sync"
	"time"

	"nextstep_backend/internal/model"
)

type ReferralRepository struct {
	mu         sync.RWMutex
	referrals  map[int]*model.Referral
	byReferrer map[int][]int
	nextID     int
}

func NewReferralRepository() *ReferralRepository {
	return &ReferralRepository{
		referrals:  make(map[int]*model.Referral),
		byReferrer: make(map[int][]int),
		nextID:     1,
	}
}

func (r *ReferralRepository) Create(referrerUserID, referredUserID int, isSchool bool) model.Referral {
	r.mu.Lock()
	defer r.mu.Unlock()
	ref := &model.Referral{
		ID:             r.nextID,
		ReferrerUserID: referrerUserID,
		ReferredUserID: referredUserID,
		IsSchool:       isSchool,
		CommissionPaid: false,
		CreatedAt:      time.Now(),
	}
	r.nextID++
	r.referrals[ref.ID] = ref
	r.byReferrer[referrerUserID] = append(r.byReferrer[referrerUserID], ref.ID)
	return *ref
}

// ForReferrer lists the referrals the user earned, oldest first.
func (r *ReferralRepository) ForReferrer(userID int) []model.Referral {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byReferrer[userID]
	out := make([]model.Referral, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.referrals[id])
	}
	return out
}
