package service

import (
	"context"

	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"
)

// minCompletedModules gates recommendation generation.
const minCompletedModules = 3

type CareerService struct {
	Careers  *repository.CareerRepository
	Progress *repository.ProgressRepository
	Modules  *repository.ModuleRepository
	AI       *AIService
}

func NewCareerService(careers *repository.CareerRepository, progress *repository.ProgressRepository, modules *repository.ModuleRepository, ai *AIService) *CareerService {
	return &CareerService{
		Careers:  careers,
		Progress: progress,
		Modules:  modules,
		AI:       ai,
	}
}

func (s *CareerService) Recommendations(userID int) []model.CareerRecommendation {
	return s.Careers.ForUser(userID)
}

// Generate produces and persists a batch of three recommendations. The
// student's interests are taken from the categories of completed modules.
func (s *CareerService) Generate(ctx context.Context, userID int) ([]model.CareerRecommendation, error) {
	completedIDs := s.Progress.CompletedModuleIDs(userID)
	if len(completedIDs) < minCompletedModules {
		return nil, util.ErrNotEnoughModules
	}

	titles := make([]string, 0, len(completedIDs))
	interests := []string{}
	seen := map[string]bool{}
	for _, id := range completedIDs {
		if m, ok := s.Modules.FindByID(id); ok {
			titles = append(titles, m.Title)
			if !seen[m.Category] {
				seen[m.Category] = true
				interests = append(interests, m.Category)
			}
		}
	}

	contents := s.AI.CareerRecommendations(ctx, interests, titles)

	saved := make([]model.CareerRecommendation, 0, len(contents))
	for _, c := range contents {
		saved = append(saved, s.Careers.Create(model.CareerRecommendation{
			UserID:          userID,
			Title:           c.Title,
			Description:     c.Description,
			MatchScore:      c.MatchScore,
			FieldOfStudy:    c.FieldOfStudy,
			AvgSalary:       c.AvgSalary,
			EduRequirements: c.EduRequirements,
		}))
	}

	return saved, nil
}
