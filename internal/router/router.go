package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codecoach-dev/codecoach-api/internal/handler"
	"github.com/codecoach-dev/codecoach-api/internal/middleware"
	"github.com/codecoach-dev/codecoach-api/internal/observability"
)

// Dependencies carries every handler the router mounts plus the settings
// shared across route groups.
type Dependencies struct {
	Health      *handler.HealthHandler
	Submissions *handler.SubmissionHandler
	Learn       *handler.LearnHandler
	Plans       *handler.PlanHandler
	Leaderboard *handler.LeaderboardHandler
	Problems    *handler.ProblemHandler

	JWTSecret        string
	AIRequestsPerMin int
}

func Register(app *fiber.App, deps Dependencies) {
	app.Get("/health", deps.Health.Check)
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1")
	api.Get("/health", deps.Health.Check)

	aiLimiter := middleware.RateLimit("ai", deps.AIRequestsPerMin, time.Minute)

	// Submissions accept anonymous traffic; a valid token attaches the
	// result to the caller's history.
	api.Post("/submissions",
		middleware.JWTOptional(deps.JWTSecret),
		aiLimiter,
		deps.Submissions.Submit,
	)

	learn := api.Group("/learn", aiLimiter)
	learn.Post("/tips", deps.Learn.Tips)
	learn.Post("/quiz", deps.Learn.Quiz)
	learn.Post("/roadmap", deps.Learn.Roadmap)

	plans := api.Group("/plans", middleware.JWTProtected(deps.JWTSecret))
	plans.Post("/", deps.Plans.Accept)
	plans.Get("/", deps.Plans.List)

	api.Get("/leaderboard", deps.Leaderboard.List)
	api.Get("/problems", deps.Problems.List)
}
