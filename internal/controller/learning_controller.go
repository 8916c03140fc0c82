package controller

import (
	"errors"
	"net/http"
	"strconv"

	"nextstep_backend/internal/middleware"
	"nextstep_backend/internal/service"
	"nextstep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

// GetModules godoc
// @Summary List all learning modules
// @Tags modules
// @Produce json
// @Success 200 {array} model.Module
// @Router /api/modules [get]
func (c *LearningController) GetModules(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.LearningService.AllModules())
}

// GetModule godoc
// @Summary Fetch a single module
// @Tags modules
// @Produce json
// @Param id path int true "module id"
// @Success 200 {object} model.Module
// @Failure 400 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/modules/{id} [get]
func (c *LearningController) GetModule(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "Invalid module ID")
		return
	}

	module, ok := c.LearningService.Module(id)
	if !ok {
		util.NotFound(ctx, "Module not found")
		return
	}

	ctx.JSON(http.StatusOK, module)
}

// GetModulesByCategory godoc
// @Summary List modules in a category
// @Tags modules
// @Produce json
// @Param category path string true "category name"
// @Success 200 {array} model.Module
// @Router /api/modules/category/{category} [get]
func (c *LearningController) GetModulesByCategory(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.LearningService.ModulesByCategory(ctx.Param("category")))
}

// GetProgress godoc
// @Summary List the caller's progress rows
// @Tags progress
// @Produce json
// @Success 200 {array} model.UserProgress
// @Failure 401 {object} util.MessageResponse
// @Router /api/user/progress [get]
func (c *LearningController) GetProgress(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, c.LearningService.ProgressForUser(user.ID))
}

// UpdateProgressRequest defines the progress submission payload.
// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	ModuleID    int  `json:"moduleId" binding:"required"`
	Progress    *int `json:"progress" binding:"required,gte=0,lte=100"`
	IsCompleted bool `json:"isCompleted"`
}

// UpdateProgress godoc
// @Summary Upsert progress for a module
// @Description A 100% completed submission credits the module's points and may unlock achievements
// @Tags progress
// @Accept json
// @Produce json
// @Param body body UpdateProgressRequest true "progress payload"
// @Success 200 {object} model.UserProgress
// @Failure 400 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Failure 404 {object} util.MessageResponse
// @Router /api/user/progress [post]
func (c *LearningController) UpdateProgress(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	row, err := c.LearningService.UpdateProgress(user.ID, req.ModuleID, *req.Progress, req.IsCompleted)
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "Failed to update progress", err)
		return
	}

	ctx.JSON(http.StatusOK, row)
}
