package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/codecoach-dev/codecoach-api/internal/service"
	"github.com/codecoach-dev/codecoach-api/internal/utils"
)

type ProblemHandler struct {
	problems service.ProblemService
	logger   zerolog.Logger
}

func NewProblemHandler(problems service.ProblemService, logger zerolog.Logger) *ProblemHandler {
	return &ProblemHandler{problems: problems, logger: logger}
}

func (h *ProblemHandler) List(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid page parameter", err.Error())
	}
	pageSize, err := parseQueryInt(c, "pageSize")
	if err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid pageSize parameter", err.Error())
	}

	response := h.problems.List(c.UserContext(), service.ProblemQuery{
		Tag:        c.Query("tag"),
		Difficulty: c.Query("difficulty"),
		Page:       page,
		PageSize:   pageSize,
	})

	return utils.OK(c, "problems retrieved", response)
}
