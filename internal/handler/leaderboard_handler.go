package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/codecoach-dev/codecoach-api/internal/service"
	"github.com/codecoach-dev/codecoach-api/internal/utils"
)

type LeaderboardHandler struct {
	leaderboard service.LeaderboardService
	logger      zerolog.Logger
}

func NewLeaderboardHandler(leaderboard service.LeaderboardService, logger zerolog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, logger: logger}
}

// List always answers 200; the service falls back to demo standings when no
// database is reachable.
func (h *LeaderboardHandler) List(c *fiber.Ctx) error {
	response := h.leaderboard.List(c.UserContext(), c.Query("currentUser"))
	return utils.OK(c, "leaderboard retrieved", response)
}
