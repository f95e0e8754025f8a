package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/utils"
)

// ProfileHandler serves the authenticated user's profile, including the
// points summary for students.
type ProfileHandler struct {
	directory service.DirectoryService
	logger    zerolog.Logger
}

// NewProfileHandler builds a profile handler instance.
func NewProfileHandler(directory service.DirectoryService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		directory: directory,
		logger:    logger.With().Str("component", "profile_handler").Logger(),
	}
}

// Register attaches the profile route to the provided router group.
func (h *ProfileHandler) Register(router fiber.Router) {
	router.Get("", h.me)
}

func (h *ProfileHandler) me(c *fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	profile, err := h.directory.Profile(c.UserContext(), actor.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "user not found")
		}
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "profile retrieved", profile)
}
