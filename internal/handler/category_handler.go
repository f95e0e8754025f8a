package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/utils"
)

// CategoryHandler serves the category listing available to all users.
type CategoryHandler struct {
	categories service.CategoryService
	logger     zerolog.Logger
}

// NewCategoryHandler builds a category handler instance.
func NewCategoryHandler(categories service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger.With().Str("component", "category_handler").Logger(),
	}
}

// Register attaches the category routes to the provided router group.
func (h *CategoryHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *CategoryHandler) list(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list categories")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "categories retrieved", categories)
}
