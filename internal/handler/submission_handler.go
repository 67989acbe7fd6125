package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/codecoach-dev/codecoach-api/internal/dto"
	"github.com/codecoach-dev/codecoach-api/internal/service"
	"github.com/codecoach-dev/codecoach-api/internal/utils"
)

type SubmissionHandler struct {
	submissions service.SubmissionService
	logger      zerolog.Logger
}

func NewSubmissionHandler(submissions service.SubmissionService, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions, logger: logger}
}

// Submit runs the code through the judge, asks the coach for a report and
// returns both. Authentication is optional; anonymous submissions are judged
// but never persisted.
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	var payload dto.SubmissionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.Fail(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	response, err := h.submissions.Submit(c.UserContext(), userIDFromContext(c), payload)
	if err != nil {
		if details := validationDetails(err); details != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "validation failed", details)
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("submission failed")
		return utils.Fail(c, fiber.StatusInternalServerError, "failed to process submission", nil)
	}

	return utils.OK(c, "submission processed", response)
}
