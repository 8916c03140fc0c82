package app

import (
	"nextstep_backend/internal/model"
)

// seedStore loads the starter catalog so a fresh process has content to
// serve before any user activity.
func seedStore(repos *repositories) {
	modules := []model.Module{
		{
			Title:       "Career Exploration Fundamentals",
			Description: "Learn to identify your interests and potential career paths.",
			Category:    "Career Exploration",
			ImageURL:    "https://images.unsplash.com/photo-1603468620905-8de7d86b781e?ixlib=rb-1.2.1&auto=format&fit=crop&w=1055&q=80",
			Duration:    45,
			Points:      250,
			Order:       1,
			IsActive:    true,
		},
		{
			Title:       "Resume Building Fundamentals",
			Description: "Create a standout resume that highlights your strengths.",
			Category:    "Skill Building",
			ImageURL:    "https://images.unsplash.com/photo-1542744173-8e7e53415bb0?ixlib=rb-1.2.1&auto=format&fit=crop&w=1050&q=80",
			Duration:    60,
			Points:      300,
			Order:       2,
			IsActive:    true,
		},
		{
			Title:       "Interview Skills Mastery",
			Description: "Prepare for successful interviews with confidence.",
			Category:    "Skill Building",
			ImageURL:    "https://images.unsplash.com/photo-1552664730-d307ca884978?ixlib=rb-1.2.1&auto=format&fit=crop&w=1050&q=80",
			Duration:    90,
			Points:      400,
			Order:       3,
			IsActive:    true,
		},
	}
	for _, m := range modules {
		repos.module.Create(m)
	}

	achievements := []model.Achievement{
		{
			Title:       "Career Explorer",
			Description: "Complete the Career Exploration module",
			Icon:        "medal",
			Points:      250,
			Requirement: "Complete Career Exploration Fundamentals module",
		},
		{
			Title:       "Fast Learner",
			Description: "Complete a module in under 30 minutes",
			Icon:        "book",
			Points:      300,
			Requirement: "Complete any module in less than 30 minutes",
		},
		{
			Title:       "1K Points",
			Description: "Earn 1,000 points on the platform",
			Icon:        "star",
			Points:      100,
			Requirement: "Reach 1,000 total points",
		},
		{
			Title:       "Tech Savvy",
			Description: "Complete technology-related modules",
			Icon:        "laptop-code",
			Points:      200,
			Requirement: "Complete two technology-related modules",
		},
	}
	for _, a := range achievements {
		repos.achievement.Create(a)
	}

	scholarships := []model.Scholarship{
		{
			Title:          "Future Leaders Scholarship",
			Description:    "Complete most modules to qualify for this scholarship",
			Amount:         1000,
			PointsRequired: 10000,
			IsActive:       true,
		},
		{
			Title:          "Career Readiness Scholarship",
			Description:    "Complete the Career Readiness path to qualify",
			Amount:         500,
			PointsRequired: 5000,
			IsActive:       true,
		},
		{
			Title:          "Tech Innovator Scholarship",
			Description:    "Complete the Tech Skills path to qualify",
			Amount:         750,
			PointsRequired: 8000,
			IsActive:       true,
		},
	}
	for _, s := range scholarships {
		repos.scholarship.Create(s)
	}
}
