package service

import (
	"strings"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"
	"nextstep_backend/pkg/logger"

	"go.uber.org/zap"
)

type LearningService struct {
	Modules      *repository.ModuleRepository
	Progress     *repository.ProgressRepository
	Achievements *repository.AchievementRepository
	Users        *repository.UserRepository
}

func NewLearningService(modules *repository.ModuleRepository, progress *repository.ProgressRepository, achievements *repository.AchievementRepository, users *repository.UserRepository) *LearningService {
	return &LearningService{
		Modules:      modules,
		Progress:     progress,
		Achievements: achievements,
		Users:        users,
	}
}

func (s *LearningService) AllModules() []model.Module {
	return s.Modules.All()
}

func (s *LearningService) Module(id int) (model.Module, bool) {
	return s.Modules.FindByID(id)
}

func (s *LearningService) ModulesByCategory(category string) []model.Module {
	return s.Modules.FindByCategory(category)
}

func (s *LearningService) ProgressForUser(userID int) []model.UserProgress {
	return s.Progress.FindByUser(userID)
}

// UpdateProgress upserts the progress row. A 100% submission flagged as
// completed credits the module's points and runs the achievement scan.
// Re-submitting 100% credits again on every call.
func (s *LearningService) UpdateProgress(userID, moduleID, progress int, isCompleted bool) (model.UserProgress, error) {
	module, ok := s.Modules.FindByID(moduleID)
	if !ok {
		return model.UserProgress{}, util.ErrModuleNotFound
	}

	row := s.Progress.Upsert(userID, moduleID, progress)

	if progress == 100 && isCompleted {
		s.Users.AddPoints(userID, module.Points)
		s.unlockMatching(userID, module.Title)
	}

	return row, nil
}

// unlockMatching scans every achievement whose requirement text mentions
// the completed module's title and unlocks it; the achievement's own points
// are credited only on first unlock.
func (s *LearningService) unlockMatching(userID int, moduleTitle string) {
	for _, a := range s.Achievements.All() {
		if !strings.Contains(a.Requirement, moduleTitle) {
			continue
		}
		if _, created, ok := s.Achievements.Unlock(userID, a.ID); ok && created {
			s.Users.AddPoints(userID, a.Points)
			logger.Log.Info("achievement unlocked",
				zap.Int("userId", userID),
				zap.Int("achievementId", a.ID),
				zap.String("title", a.Title))
		}
	}
}
