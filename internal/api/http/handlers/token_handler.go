package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/token-service/internal/api/dto"
	"github.com/spec-kit/token-service/internal/domain"
	apperrors "github.com/spec-kit/token-service/pkg/util/errorutil"
)

// TokenIssuer is the subset of auth.Issuer used by the handler.
type TokenIssuer interface {
	Issue(creds domain.Credentials) (string, error)
}

// TokenHandler exposes token issuance and introspection.
type TokenHandler struct {
	issuer TokenIssuer
	logger *zap.Logger
}

// NewTokenHandler constructs handler.
func NewTokenHandler(issuer TokenIssuer, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{issuer: issuer, logger: logger}
}

// Issue handles POST /auth.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	token, err := h.issuer.Issue(req.Credentials())
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeMissingParameter) {
			h.logger.Error("login rejected", zap.String("reason", apperrors.ToDomainError(err).Message))
		}
		return err
	}

	return c.JSON(dto.TokenResponse{Token: token})
}

// Contents handles GET /contents for an already authenticated caller.
func (h *TokenHandler) Contents(c *fiber.Ctx, claims *domain.Claims) error {
	return c.JSON(dto.NewContentsResponse(claims))
}
