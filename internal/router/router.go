package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/config"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/handler"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/middleware"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/models"
	"github.com/prakash-nitc/Student-Activity-Point-Management-Portal/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	RequestHandler  *handler.RequestHandler
	AdvisorHandler  *handler.AdvisorHandler
	AdminHandler    *handler.AdminHandler
	CategoryHandler *handler.CategoryHandler
	ProfileHandler  *handler.ProfileHandler
	UploadHandler   *handler.UploadHandler
	JWTMiddleware   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	authenticated := api.Group("", jwtMiddleware)

	if deps.CategoryHandler != nil {
		deps.CategoryHandler.Register(authenticated.Group("/categories"))
	}

	if deps.ProfileHandler != nil {
		deps.ProfileHandler.Register(authenticated.Group("/me"))
	}

	if deps.UploadHandler != nil {
		uploads := authenticated.Group("/uploads",
			middleware.RequireRole(models.RoleStudent),
			middleware.RateLimit("uploads", 10, time.Minute))
		deps.UploadHandler.Register(uploads)
	}

	if deps.RequestHandler != nil {
		// Students and reviewers share the /requests prefix. Role guards go
		// on the routes themselves: group middleware is prefix-matched for
		// all methods, so a group-level guard would shadow the other role's
		// routes under the same prefix.
		requests := authenticated.Group("/requests")
		deps.RequestHandler.RegisterStudent(requests,
			middleware.RequireRole(models.RoleStudent),
			middleware.RateLimit("requests", 30, time.Minute))

		// Transition is shared by advisors and admins; the service layer
		// enforces which actions each role may take.
		deps.RequestHandler.RegisterTransition(requests,
			middleware.RequireRole(models.RoleFA, models.RoleAdmin))
	}

	if deps.AdvisorHandler != nil {
		advisor := authenticated.Group("/fa", middleware.RequireRole(models.RoleFA))
		deps.AdvisorHandler.Register(advisor)
	}

	if deps.AdminHandler != nil {
		admin := authenticated.Group("/admin", middleware.RequireRole(models.RoleAdmin))
		deps.AdminHandler.Register(admin)
	}
}
