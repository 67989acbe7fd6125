package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/service"
	"github.com/codecoach-dev/codecoach-api/internal/utils"
)

type PlanHandler struct {
	plans  service.PlanService
	logger zerolog.Logger
}

func NewPlanHandler(plans service.PlanService, logger zerolog.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, logger: logger}
}

// Accept persists a roadmap the user committed to. Requires authentication.
func (h *PlanHandler) Accept(c *fiber.Ctx) error {
	var payload dto.PlanAcceptRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	response, err := h.plans.Accept(c.UserContext(), userIDFromContext(c), payload)
	if err != nil {
		if details := validationDetails(err); details != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "validation failed", details)
		}
		if errors.Is(err, service.ErrPlanStorageUnavailable) {
			return utils.Fail(c, fiber.StatusServiceUnavailable, "plan storage unavailable", nil)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("plan accept failed")
		return utils.Fail(c, fiber.StatusInternalServerError, "failed to save plan", nil)
	}

	return utils.OK(c, "plan saved", response)
}

func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.plans.ListByUser(c.UserContext(), userIDFromContext(c))
	if err != nil {
		if errors.Is(err, service.ErrPlanStorageUnavailable) {
			return utils.Fail(c, fiber.StatusServiceUnavailable, "plan storage unavailable", nil)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("plan list failed")
		return utils.Fail(c, fiber.StatusInternalServerError, "failed to list plans", nil)
	}

	return utils.OK(c, "plans retrieved", plans)
}
