package controller

import (
	"net/http"

	"nextstep_backend/internal/middleware"
	"nextstep_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralController struct {
	AuthService *service.AuthService
}

func NewReferralController(authService *service.AuthService) *ReferralController {
	return &ReferralController{AuthService: authService}
}

// GetReferrals godoc
// @Summary List the referrals the caller earned
// @Tags referrals
// @Produce json
// @Success 200 {array} model.Referral
// @Failure 401 {object} util.MessageResponse
// @Router /api/referrals [get]
func (c *ReferralController) GetReferrals(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	ctx.JSON(http.StatusOK, c.AuthService.ReferralsForUser(user.ID))
}
