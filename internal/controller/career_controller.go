package controller

import (
	"errors"
	"net/http"

	"nextstep_backend/internal/middleware"
	"nextstep_backend/internal/service"
	"nextstep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CareerController struct {
	CareerService *service.CareerService
}

func NewCareerController(careerService *service.CareerService) *CareerController {
	return &CareerController{CareerService: careerService}
}

// GetRecommendations godoc
// @Summary List the caller's saved career recommendations
// @Tags career
// @Produce json
// @Success 200 {array} model.CareerRecommendation
// @Failure 401 {object} util.MessageResponse
// @Router /api/career/recommendations [get]
func (c *CareerController) GetRecommendations(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, c.CareerService.Recommendations(user.ID))
}

// GenerateRecommendations godoc
// @Summary Generate and persist a fresh batch of recommendations
// @Description Requires at least 3 completed modules
// @Tags career
// @Produce json
// @Success 201 {array} model.CareerRecommendation
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /api/career/generate-recommendations [post]
func (c *CareerController) GenerateRecommendations(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	saved, err := c.CareerService.Generate(ctx.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, util.ErrNotEnoughModules) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "Failed to generate career recommendations", err)
		return
	}

	ctx.JSON(http.StatusCreated, saved)
}
