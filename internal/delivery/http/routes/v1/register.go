package v1

import (
	"log"
	"time"

	"skill-evolution/internal/config"
	"skill-evolution/internal/database"
	"skill-evolution/internal/delivery/http/handler"
	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/domain/extract"
	"skill-evolution/internal/domain/lexicon"
	"skill-evolution/internal/domain/pathway"
	"skill-evolution/internal/infrastructure/cache"
	"skill-evolution/internal/infrastructure/persistence/postgres"
	"skill-evolution/internal/pkg/jwt"
	"skill-evolution/internal/repository"
	"skill-evolution/internal/usecase"
	"skill-evolution/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything the HTTP surface needs wired in.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

// Register wires repositories, usecases and handlers onto the /api/v1 group.
func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		d.Config.JWT.AccessSecret,
		d.Config.JWT.RefreshSecret,
		d.Config.JWT.AccessExpiresIn,
		d.Config.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(d.DB)
	skillRepo := repository.NewPostgresUserSkillRepository(d.DB)
	progressRepo := repository.NewPostgresProgressRepository(d.DB)
	resultRepo := repository.NewPostgresAssessmentRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	leaderboardRepo := repository.NewPostgresLeaderboardRepository(d.DB)
	demandRepo := repository.NewPostgresDemandRepository(d.DB)

	lex := lexicon.Default()
	extractor := extract.NewExtractor(lex)
	generator := pathway.NewGenerator(pathway.DefaultCatalog())

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, skillRepo, lex)
	resumeUC := usecase.NewResumeUsecase(extractor, skillRepo)
	recommendationUC := usecase.NewRecommendationUsecase(userRepo, skillRepo, demandRepo, generator)
	dashboardUC := usecase.NewDashboardUsecase(userRepo, skillRepo, resultRepo, recommendationUC)
	jobMatchUC := usecase.NewJobMatchUsecase(skillRepo, jobRepo)
	forecastUC := usecase.NewForecastUsecase(demandRepo, d.Cache, time.Hour)
	assessmentUC := usecase.NewAssessmentUsecase(userRepo, progressRepo, resultRepo, d.Cache, d.Logger)
	leaderboardUC := usecase.NewLeaderboardUsecase(leaderboardRepo, d.Cache, time.Minute)
	coachUC := usecase.NewCoachUsecase(userRepo)

	handler.NewAuthHandler(authUC).RegisterRoutes(r.Group("/auth"))

	// Public read-only surfaces.
	handler.NewForecastHandler(forecastUC).RegisterRoutes(r.Group("/forecast"))
	handler.NewLeaderboardHandler(leaderboardUC).RegisterRoutes(r.Group("/leaderboard"))

	protected := r.Group("", authMw.Middleware())
	handler.NewUserHandler(userUC).RegisterRoutes(protected.Group("/users"))
	handler.NewDashboardHandler(dashboardUC).RegisterRoutes(protected.Group("/dashboard"))
	handler.NewResumeHandler(resumeUC).RegisterRoutes(protected.Group("/resume"))
	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(protected.Group("/pathways"))
	handler.NewJobsHandler(jobMatchUC).RegisterRoutes(protected.Group("/jobs"))
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(protected.Group("/assessments"))
	handler.NewCoachHandler(coachUC).RegisterRoutes(protected.Group("/coach"))
}
