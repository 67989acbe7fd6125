package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codecoach-dev/codecoach-api/internal/utils"
)

// HealthHandler reports process liveness plus which backing services run in
// live mode versus degraded (mock or disabled) mode.
type HealthHandler struct {
	appName      string
	env          string
	judgeLive    bool
	aiLive       bool
	databaseLive bool
	cacheLive    bool
}

func NewHealthHandler(appName, env string, judgeLive, aiLive, databaseLive, cacheLive bool) *HealthHandler {
	return &HealthHandler{
		appName:      appName,
		env:          env,
		judgeLive:    judgeLive,
		aiLive:       aiLive,
		databaseLive: databaseLive,
		cacheLive:    cacheLive,
	}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return utils.OK(c, "ok", fiber.Map{
		"app":       h.appName,
		"env":       h.env,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services":  fiber.Map{
			"judge":    modeLabel(h.judgeLive),
			"ai":       modeLabel(h.aiLive),
			"database": modeLabel(h.databaseLive),
			"cache":    modeLabel(h.cacheLive),
		},
	})
}

func modeLabel(live bool) string {
	if live {
		return "live"
	}
	return "degraded"
}
