package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/service"
)

var errMissingIdentity = errors.New("missing identity assertion")

// withGuards builds a per-route handler chain ending in the final handler.
func withGuards(guards []fiber.Handler, final fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(guards)+1)
	chain = append(chain, guards...)
	return append(chain, final)
}

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := c.Params(key)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return uint(parsed), nil
}

// actorFromCtx rebuilds the identity assertion the JWT middleware attached.
func actorFromCtx(c *fiber.Ctx) (service.Actor, error) {
	id, ok := c.Locals("user_id").(uint)
	if !ok || id == 0 {
		return service.Actor{}, errMissingIdentity
	}

	role, ok := c.Locals("user_role").(models.Role)
	if !ok || !role.Valid() {
		return service.Actor{}, errMissingIdentity
	}

	return service.Actor{ID: id, Role: role}, nil
}
