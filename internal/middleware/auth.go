package middleware

import (
	"nextstep_backend/internal/config"
	"nextstep_backend/internal/model"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// clearSessionCookie tells the browser to drop a token that no longer
// resolves to a live session.
func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetCookie(cfg.Session.CookieName, "", -1, "/", "", cfg.Server.Mode == "release", true)
}

// AuthMiddleware resolves the session cookie to a user and rejects the
// request otherwise. A stale or unknown token gets the cookie cleared so
// the client stops sending it.
func AuthMiddleware(cfg *config.Config, sessions *repository.SessionRepository, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || token == "" {
			util.Unauthorized(c, "Unauthorized - No token provided")
			c.Abort()
			return
		}

		session, ok := sessions.FindByToken(token)
		if !ok {
			clearSessionCookie(c, cfg)
			util.Unauthorized(c, "Unauthorized - Invalid token")
			c.Abort()
			return
		}

		user, ok := users.FindByID(session.UserID)
		if !ok {
			clearSessionCookie(c, cfg)
			util.Unauthorized(c, "Unauthorized - User not found")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// TryAuthMiddleware attaches the user when a valid session cookie is
// present but never rejects the request. Read-only community endpoints
// use it so guests can browse.
func TryAuthMiddleware(cfg *config.Config, sessions *repository.SessionRepository, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Session.CookieName)
		if err == nil && token != "" {
			if session, ok := sessions.FindByToken(token); ok {
				if user, ok := users.FindByID(session.UserID); ok {
					c.Set(userContextKey, user)
				}
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthMiddleware
// or TryAuthMiddleware.
func CurrentUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}
