package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to liveness probes.
type HealthHandler struct{}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports liveness for any method routed to it.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON("Healthy")
}
