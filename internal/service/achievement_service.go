package service

import (
	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
)

type AchievementService struct {
	Achievements *repository.AchievementRepository
}

func NewAchievementService(achievements *repository.AchievementRepository) *AchievementService {
	return &AchievementService{Achievements: achievements}
}

func (s *AchievementService) All() []model.Achievement {
	return s.Achievements.All()
}

func (s *AchievementService) ForUser(userID int) []model.Achievement {
	return s.Achievements.ForUser(userID)
}
