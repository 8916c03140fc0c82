package controller

import (
	"net/http"

	"nextstep_backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type ScholarshipController struct {
	Scholarships *repository.ScholarshipRepository
}

func NewScholarshipController(scholarships *repository.ScholarshipRepository) *ScholarshipController {
	return &ScholarshipController{Scholarships: scholarships}
}

// GetScholarships godoc
// @Summary List available scholarships
// @Tags scholarships
// @Produce json
// @Success 200 {array} model.Scholarship
// @Router /api/scholarships [get]
func (c *ScholarshipController) GetScholarships(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Scholarships.All())
}
