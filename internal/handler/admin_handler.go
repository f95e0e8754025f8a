package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/dto"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/repository"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/utils"
)

// AdminHandler serves the administrator surface: final approval queue, user
// directory and category routing management.
type AdminHandler struct {
	workflow   service.WorkflowService
	directory  service.DirectoryService
	categories service.CategoryService
	audit      service.AuditService
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewAdminHandler builds an admin handler instance. The audit service may be
// nil, in which case the audit trail route is not served.
func NewAdminHandler(workflow service.WorkflowService, directory service.DirectoryService, categories service.CategoryService, audit service.AuditService, validate *validator.Validate, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		workflow:   workflow,
		directory:  directory,
		categories: categories,
		audit:      audit,
		validator:  validate,
		logger:     logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches the admin routes to the provided router group.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/requests/final-queue", h.finalQueue)
	router.Get("/users", h.listUsers)
	router.Get("/advisors", h.listAdvisors)
	router.Put("/users/:id/primary-fa", h.assignPrimaryFA)
	router.Post("/categories", h.createCategory)
	router.Put("/categories/:id/override-fa", h.setOverrideFA)
	if h.audit != nil {
		router.Get("/audit-logs", h.listAuditLogs)
	}
}

func (h *AdminHandler) listAuditLogs(c *fiber.Ctx) error {
	filter := repository.AuditLogFilter{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 50),
		Action:   c.Query("action"),
	}
	if actorID := c.QueryInt("actor_id", 0); actorID > 0 {
		id := uint(actorID)
		filter.ActorID = &id
	}

	trail, err := h.audit.List(c.UserContext(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "audit trail retrieved", trail)
}

func (h *AdminHandler) finalQueue(c *fiber.Ctx) error {
	requests, err := h.workflow.ListFinalQueue(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "final approval queue retrieved", requests)
}

func (h *AdminHandler) listUsers(c *fiber.Ctx) error {
	users, err := h.directory.ListUsers(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "users retrieved", users)
}

func (h *AdminHandler) listAdvisors(c *fiber.Ctx) error {
	advisors, err := h.directory.ListAdvisors(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "advisors retrieved", advisors)
}

func (h *AdminHandler) assignPrimaryFA(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.AssignPrimaryFARequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return h.handleError(c, err)
	}

	student, err := h.directory.AssignPrimaryFA(c.UserContext(), studentID, payload.PrimaryFAID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "primary advisor updated", student)
}

func (h *AdminHandler) createCategory(c *fiber.Ctx) error {
	var payload dto.CategoryCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	category, err := h.categories.Create(c.UserContext(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendCreated(c, "category created", category)
}

func (h *AdminHandler) setOverrideFA(c *fiber.Ctx) error {
	categoryID, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.CategoryOverrideRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return h.handleError(c, err)
	}

	category, err := h.categories.SetOverrideFA(c.UserContext(), categoryID, payload.OverrideFAID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "category override updated", category)
}

func (h *AdminHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "category not found")
	case errors.Is(err, service.ErrAdvisorNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "faculty advisor not found")
	case errors.Is(err, service.ErrNotAStudent):
		return utils.SendError(c, fiber.StatusBadRequest, "primary advisors can only be assigned to students")
	case errors.Is(err, service.ErrCategoryExists):
		return utils.SendError(c, fiber.StatusConflict, "a category with this name already exists")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
