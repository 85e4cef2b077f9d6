package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/token-service/internal/api/http/handlers"
	"github.com/spec-kit/token-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Tokens *handlers.TokenHandler
	Guard  *auth.Guard
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Health)
	app.Post("/", cfg.Health.Health)

	app.Post("/auth", cfg.Tokens.Issue)
	app.Get("/contents", auth.Protect(cfg.Guard, cfg.Tokens.Contents))
}
