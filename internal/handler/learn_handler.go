package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/service"
	"github.com/codecoach-dev/codecoach-api/internal/utils"
)

type LearnHandler struct {
	learn  service.LearnService
	logger zerolog.Logger
}

func NewLearnHandler(learn service.LearnService, logger zerolog.Logger) *LearnHandler {
	return &LearnHandler{learn: learn, logger: logger}
}

func (h *LearnHandler) Tips(c *fiber.Ctx) error {
	var payload dto.TipsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	report, err := h.learn.Tips(c.UserContext(), payload)
	if err != nil {
		if details := validationDetails(err); details != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "validation failed", details)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("tips generation failed")
		return utils.Fail(c, fiber.StatusInternalServerError, "failed to generate tips", nil)
	}

	return utils.OK(c, "tips generated", report)
}

func (h *LearnHandler) Quiz(c *fiber.Ctx) error {
	var payload dto.QuizRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	response, err := h.learn.Quiz(c.UserContext(), payload)
	if err != nil {
		if details := validationDetails(err); details != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "validation failed", details)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("quiz generation failed")
		return utils.Fail(c, fiber.StatusInternalServerError, "failed to generate quiz", nil)
	}

	return utils.OK(c, "quiz generated", response)
}

func (h *LearnHandler) Roadmap(c *fiber.Ctx) error {
	var payload dto.RoadmapRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	response, err := h.learn.Roadmap(c.UserContext(), payload)
	if err != nil {
		if details := validationDetails(err); details != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "validation failed", details)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("roadmap generation failed")
		return utils.Fail(c, fiber.StatusInternalServerError, "failed to generate roadmap", nil)
	}

	return utils.OK(c, "roadmap generated", response)
}
