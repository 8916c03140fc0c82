package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextstep_backend/internal/config"
	"nextstep_backend/internal/controller"
	"nextstep_backend/internal/repository"
	"nextstep_backend/internal/service"
	"nextstep_backend/pkg/logger"
	"nextstep_backend/pkg/monitoring"
	"nextstep_backend/pkg/security"
	"nextstep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine

	repos       *repositories
	services    *services
	controllers *controllers
}

type repositories struct {
	user        *repository.UserRepository
	session     *repository.SessionRepository
	module      *repository.ModuleRepository
	progress    *repository.ProgressRepository
	achievement *repository.AchievementRepository
	scholarship *repository.ScholarshipRepository
	chat        *repository.ChatRepository
	career      *repository.CareerRepository
	referral    *repository.ReferralRepository
	community   *repository.CommunityRepository
}

type services struct {
	ai        *service.AIService
	auth      *service.AuthService
	learning  *service.LearningService
	achieve   *service.AchievementService
	chat      *service.ChatService
	career    *service.CareerService
	community *service.CommunityService
	storage   *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	learning    *controller.LearningController
	achievement *controller.AchievementController
	scholarship *controller.ScholarshipController
	chat        *controller.ChatController
	career      *controller.CareerController
	referral    *controller.ReferralController
	community   *controller.CommunityController
	health      *controller.HealthController
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(),
		session:     repository.NewSessionRepository(cfg.Session.TTL),
		module:      repository.NewModuleRepository(),
		progress:    repository.NewProgressRepository(),
		achievement: repository.NewAchievementRepository(),
		scholarship: repository.NewScholarshipRepository(),
		chat:        repository.NewChatRepository(),
		career:      repository.NewCareerRepository(),
		referral:    repository.NewReferralRepository(),
		community:   repository.NewCommunityRepository(),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.session, repos.referral)
	s.learning = service.NewLearningService(repos.module, repos.progress, repos.achievement, repos.user)
	s.achieve = service.NewAchievementService(repos.achievement)
	s.chat = service.NewChatService(repos.chat, s.ai)
	s.career = service.NewCareerService(repos.career, repos.progress, repos.module, s.ai)
	s.community = service.NewCommunityService(repos.community, repos.module, repos.user)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, cfg *config.Config) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, cfg),
		learning:    controller.NewLearningController(s.learning),
		achievement: controller.NewAchievementController(s.achieve),
		scholarship: controller.NewScholarshipController(repos.scholarship),
		chat:        controller.NewChatController(s.chat),
		career:      controller.NewCareerController(s.career),
		referral:    controller.NewReferralController(s.auth),
		community:   controller.NewCommunityController(s.community, s.storage),
		health:      controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{Config: cfg}

	repos := app.initRepositories(cfg)
	app.repos = repos
	seedStore(repos)

	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, repos, cfg)
	app.controllers = controllers

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("nextstep-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// OnConfigReload applies the settings that can change while the process
// is running. Only the AI gateway settings are hot-swappable.
func (a *App) OnConfigReload(cfg *config.Config) {
	a.services.ai.UpdateConfig(cfg.AI)
	logger.Log.Info("configuration reloaded")
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
