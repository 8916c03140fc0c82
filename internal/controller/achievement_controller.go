package controller

import (
	"net/http"

	"nextstep_backend/internal/middleware"
	"nextstep_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// GetAchievements godoc
// @Summary List every achievement
// @Tags achievements
// @Produce json
// @Success 200 {array} model.Achievement
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.AchievementService.All())
}

// GetUserAchievements godoc
// @Summary List the achievements the caller has unlocked
// @Tags achievements
// @Produce json
// @Success 200 {array} model.Achievement
// @Failure 401 {object} util.MessageResponse
// @Router /api/user/achievements [get]
func (c *AchievementController) GetUserAchievements(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, c.AchievementService.ForUser(user.ID))
}
