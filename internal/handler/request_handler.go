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

// RequestHandler manages the student-facing and transition endpoints of the
// request lifecycle.
type RequestHandler struct {
	workflow service.WorkflowService
	logger   zerolog.Logger
}

// NewRequestHandler builds a request handler instance.
func NewRequestHandler(workflow service.WorkflowService, logger zerolog.Logger) *RequestHandler {
	return &RequestHandler{
		workflow: workflow,
		logger:   logger.With().Str("component", "request_handler").Logger(),
	}
}

// RegisterStudent attaches the student routes to the provided router group.
// Guards are attached per route: the group prefix is shared with the
// transition endpoint, and fiber prefix-matches group middleware across
// every method under it.
func (h *RequestHandler) RegisterStudent(router fiber.Router, guards ...fiber.Handler) {
	router.Post("", withGuards(guards, h.submit)...)
	router.Get("/mine", withGuards(guards, h.mine)...)
	router.Post("/:id/resubmit", withGuards(guards, h.resubmit)...)
}

// RegisterTransition attaches the shared FA/admin transition route.
func (h *RequestHandler) RegisterTransition(router fiber.Router, guards ...fiber.Handler) {
	router.Put("/:id/transition", withGuards(guards, h.transition)...)
}

func (h *RequestHandler) submit(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.RequestSubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	request, err := h.workflow.Submit(c.UserContext(), actor, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendCreated(c, "request submitted", request)
}

func (h *RequestHandler) mine(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	requests, err := h.workflow.ListForStudent(c.UserContext(), actor.ID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "requests retrieved", requests)
}

func (h *RequestHandler) resubmit(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.RequestResubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	request, err := h.workflow.Resubmit(c.UserContext(), actor, id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "request resubmitted", request)
}

func (h *RequestHandler) transition(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.RequestTransitionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	request, err := h.workflow.Transition(c.UserContext(), actor, id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "request transitioned", request)
}

func (h *RequestHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	var capErr *service.CapExceededError
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "request not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "category not found")
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrNoAdvisorAssigned):
		return utils.SendError(c, fiber.StatusUnprocessableEntity, "no faculty advisor is assigned to review this request; ask an admin to set one")
	case errors.Is(err, service.ErrUnauthorized):
		return utils.SendError(c, fiber.StatusForbidden, "you are not authorized to perform this action")
	case errors.Is(err, service.ErrInvalidTransition):
		return utils.SendError(c, fiber.StatusConflict, "action is not legal from the request's current status")
	case errors.Is(err, service.ErrCommentRequired):
		return utils.SendError(c, fiber.StatusBadRequest, "a comment explaining the decision is required")
	case errors.As(err, &capErr):
		return utils.SendError(c, fiber.StatusConflict, capErr.Error())
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
