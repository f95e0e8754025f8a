package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/utils"
)

// AdvisorHandler serves the faculty advisor review queue.
type AdvisorHandler struct {
	workflow service.WorkflowService
	logger   zerolog.Logger
}

// NewAdvisorHandler builds an advisor handler instance.
func NewAdvisorHandler(workflow service.WorkflowService, logger zerolog.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		workflow: workflow,
		logger:   logger.With().Str("component", "advisor_handler").Logger(),
	}
}

// Register attaches the advisor routes to the provided router group.
func (h *AdvisorHandler) Register(router fiber.Router) {
	router.Get("/requests", h.queue)
	router.Post("/requests/bulk-approve", h.bulkApprove)
}

func (h *AdvisorHandler) queue(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	requests, err := h.workflow.ListForFA(c.UserContext(), actor.ID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "review queue retrieved", requests)
}

func (h *AdvisorHandler) bulkApprove(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.BulkApproveRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.workflow.BulkApprove(c.UserContext(), actor, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "bulk approve applied", result)
}

func (h *AdvisorHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return utils.SendError(c, fiber.StatusForbidden, "you are not authorized to perform this action")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
