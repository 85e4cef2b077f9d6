package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/token-service/internal/domain"
)

// ClaimsHandler is a route handler that runs only for authenticated callers.
type ClaimsHandler func(c *fiber.Ctx, claims *domain.Claims) error

// Protect runs the guard against the Authorization header and hands the
// decoded claims to next. Failures propagate to the error middleware.
func Protect(guard *Guard, next ClaimsHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := guard.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		return next(c, claims)
	}
}
