package app

import (
	"nextstep_backend/docs"
	"nextstep_backend/internal/config"
	"nextstep_backend/internal/middleware"
	"nextstep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	requireAuth := middleware.AuthMiddleware(cfg, repos.session, repos.user)
	tryAuth := middleware.TryAuthMiddleware(cfg, repos.session, repos.user)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.POST("/logout", requireAuth, c.auth.Logout)
			auth.GET("/me", requireAuth, c.auth.Me)
		}

		api.GET("/modules", c.learning.GetModules)
		api.GET("/modules/category/:category", c.learning.GetModulesByCategory)
		api.GET("/modules/:id", c.learning.GetModule)

		api.GET("/achievements", c.achievement.GetAchievements)
		api.GET("/scholarships", c.scholarship.GetScholarships)

		user := api.Group("/user", requireAuth)
		{
			user.GET("/progress", c.learning.GetProgress)
			user.POST("/progress", c.learning.UpdateProgress)
			user.GET("/achievements", c.achievement.GetUserAchievements)
		}

		chat := api.Group("/chat", requireAuth)
		{
			chat.GET("/messages", c.chat.GetMessages)
			chat.POST("/messages", c.chat.SendMessage)
		}

		career := api.Group("/career", requireAuth)
		{
			career.GET("/recommendations", c.career.GetRecommendations)
			career.POST("/generate-recommendations", c.career.GenerateRecommendations)
		}

		api.GET("/referrals", requireAuth, c.referral.GetReferrals)

		community := api.Group("/community")
		{
			// Read endpoints take optional auth so guests can browse while
			// logged-in callers get their isLiked flags.
			community.GET("/posts", tryAuth, c.community.GetPosts)
			community.GET("/posts/:id", tryAuth, c.community.GetPost)
			community.GET("/posts/:id/comments", c.community.GetComments)
			community.GET("/user/:userId/posts", tryAuth, c.community.GetUserPosts)
			community.GET("/module/:moduleId/posts", tryAuth, c.community.GetModulePosts)

			community.POST("/posts", requireAuth, c.community.CreatePost)
			community.POST("/posts/:id/comments", requireAuth, c.community.CreateComment)
			community.POST("/posts/:id/like", requireAuth, c.community.LikePost)
			community.DELETE("/posts/:id/like", requireAuth, c.community.UnlikePost)
			community.POST("/upload", requireAuth, c.community.UploadAttachment)
		}
	}
}
