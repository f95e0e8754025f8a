package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/utils"
)

// UploadHandler accepts proof documents and returns the opaque reference the
// workflow requires.
type UploadHandler struct {
	proofs service.ProofService
	logger zerolog.Logger
}

// NewUploadHandler builds an upload handler instance.
func NewUploadHandler(proofs service.ProofService, logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		proofs: proofs,
		logger: logger.With().Str("component", "upload_handler").Logger(),
	}
}

// Register attaches the upload route to the provided router group.
func (h *UploadHandler) Register(router fiber.Router) {
	router.Post("/proof", h.uploadProof)
}

func (h *UploadHandler) uploadProof(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "proof file is required")
	}

	result, err := h.proofs.Upload(c.UserContext(), file)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendCreated(c, "proof stored", result)
}

func (h *UploadHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProofRequired):
		return utils.SendError(c, fiber.StatusBadRequest, "proof file is required")
	case errors.Is(err, service.ErrProofTooLarge):
		return utils.SendError(c, fiber.StatusRequestEntityTooLarge, "proof file exceeds the allowed size")
	case errors.Is(err, service.ErrProofTypeNotAllowed):
		return utils.SendError(c, fiber.StatusUnsupportedMediaType, "proof file type not allowed")
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
