package controller

import (
	"errors"
	"net/http"

	"nextstep_backend/internal/config"
	"nextstep_backend/internal/middleware"
	"nextstep_backend/internal/service"
	"nextstep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Config      *config.Config
}

func NewAuthController(authService *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Config:      cfg,
	}
}

// RegisterRequest defines the registration payload.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Email           string `json:"email" binding:"required,email"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Grade           int    `json:"grade" binding:"required,gte=9,lte=12"`
	ReferralCode    string `json:"referralCode"`
}

// setSessionCookie attaches the opaque session token. HTTP-only and
// same-site strict; the secure flag follows the run mode.
func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(
		c.Config.Session.CookieName,
		token,
		int(c.Config.Session.TTL.Seconds()),
		"/",
		"",
		c.Config.Server.Mode == "release",
		true,
	)
}

func (c *AuthController) clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(c.Config.Session.CookieName, "", -1, "/", "", c.Config.Server.Mode == "release", true)
}

// Register godoc
// @Summary Register a new student account
// @Description Creates the account, credits the referrer when a valid referral code is supplied and opens a session
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "registration payload"
// @Success 201 {object} model.User
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, session, err := c.AuthService.Register(service.RegisterInput{
		Username:     req.Username,
		Password:     req.Password,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Grade:        req.Grade,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		if errors.Is(err, util.ErrUsernameTaken) || errors.Is(err, util.ErrEmailTaken) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "Registration failed", err)
		return
	}

	c.setSessionCookie(ctx, session.Token)
	ctx.JSON(http.StatusCreated, user)
}

// LoginRequest defines the login payload.
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} model.User
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, session, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "Login failed", err)
		return
	}

	c.setSessionCookie(ctx, session.Token)
	ctx.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary End the current session
// @Tags auth
// @Produce json
// @Success 200 {object} util.MessageResponse
// @Failure 401 {object} util.MessageResponse
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(c.Config.Session.CookieName); err == nil && token != "" {
		c.AuthService.Logout(token)
	}

	c.clearSessionCookie(ctx)
	util.Message(ctx, http.StatusOK, "Logged out successfully")
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} util.MessageResponse
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		util.Unauthorized(ctx, "Unauthorized - User not found")
		return
	}
	ctx.JSON(http.StatusOK, user)
}
