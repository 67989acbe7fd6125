package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/codecoach-dev/codecoach-api/internal/config"
	"github.com/codecoach-dev/codecoach-api/internal/database"
	"github.com/codecoach-dev/codecoach-api/internal/handler"
	"github.com/codecoach-dev/codecoach-api/internal/middleware"
	"github.com/codecoach-dev/codecoach-api/internal/models"
	"github.com/codecoach-dev/codecoach-api/internal/observability"
	"github.com/codecoach-dev/codecoach-api/internal/repository"
	"github.com/codecoach-dev/codecoach-api/internal/router"
	"github.com/codecoach-dev/codecoach-api/internal/service"
	"github.com/codecoach-dev/codecoach-api/pkg/ai"
	"github.com/codecoach-dev/codecoach-api/pkg/judge"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", cfg.AppName).Logger()

	observability.RegisterMetrics()

	// Every backing service is optional. A missing database, cache, judge
	// or AI key downgrades the matching feature instead of aborting boot.
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Submission{}, &models.LearningPlan{}, &models.User{}, &models.Problem{}); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	} else {
		logger.Warn().Msg("database url not set, persistence disabled")
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not set, caching disabled")
	}

	runner := judge.New(judge.Config{
		BaseURL: cfg.Judge0URL,
		APIKey:  cfg.Judge0APIKey,
		Logger:  logger,
	})
	if cfg.Judge0URL == "" {
		logger.Warn().Msg("judge0 url not set, submissions return mock results")
	}

	coach := ai.NewCoach(ai.Config{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		MaxTokens:   cfg.OpenAIMaxTokens,
		Temperature: cfg.OpenAITemperature,
		Logger:      logger,
	})
	if cfg.OpenAIAPIKey == "" {
		logger.Warn().Msg("openai api key not set, coaching returns static reports")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	var (
		submissionRepo repository.SubmissionRepository
		planRepo       repository.PlanRepository
		userRepo       repository.UserRepository
		problemRepo    repository.ProblemRepository
	)
	if db != nil {
		submissionRepo = repository.NewSubmissionRepository(db)
		planRepo = repository.NewPlanRepository(db)
		userRepo = repository.NewUserRepository(db)
		problemRepo = repository.NewProblemRepository(db)
	}

	submissionService := service.NewSubmissionService(submissionRepo, runner, coach, validate, logger)
	learnService := service.NewLearnService(coach, validate, logger)
	planService := service.NewPlanService(planRepo, validate, logger)
	leaderboardService := service.NewLeaderboardService(userRepo, redisClient, cfg.LeaderboardCacheTTL, logger)
	problemService := service.NewProblemService(problemRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, router.Dependencies{
		Health: handler.NewHealthHandler(
			cfg.AppName, cfg.AppEnv,
			cfg.Judge0URL != "", cfg.OpenAIAPIKey != "", db != nil, redisClient != nil,
		),
		Submissions:      handler.NewSubmissionHandler(submissionService, logger),
		Learn:            handler.NewLearnHandler(learnService, logger),
		Plans:            handler.NewPlanHandler(planService, logger),
		Leaderboard:      handler.NewLeaderboardHandler(leaderboardService, logger),
		Problems:         handler.NewProblemHandler(problemService, logger),
		JWTSecret:        cfg.JWTSecret,
		AIRequestsPerMin: cfg.AIRateLimitPerMinute,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
