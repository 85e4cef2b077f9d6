package auth

import (
	"errors"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/token-service/internal/config"
	"github.com/spec-kit/token-service/internal/domain"
	apperrors "github.com/spec-kit/token-service/pkg/util/errorutil"
)

const bearerPrefix = "Bearer "

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadScheme     = errors.New("authorization header is not a bearer token")
	errMissingEmail  = errors.New("token has no email claim")
)

// Guard verifies bearer tokens. Every failure is reported as the same
// unauthorized error; the cause is only reachable through errors.Unwrap.
type Guard struct {
	secret []byte
	parser *jwt.Parser
}

// NewGuard builds a guard bound to the configured secret.
func NewGuard(cfg config.AuthConfig, opts ...Option) (*Guard, error) {
	secret, err := secretFrom(cfg)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(o.now),
	)
	return &Guard{secret: secret, parser: parser}, nil
}

// Authenticate extracts the token from an Authorization header value and
// returns its claims.
func (g *Guard) Authenticate(header string) (*domain.Claims, error) {
	if header == "" {
		return nil, apperrors.NewUnauthorized(errMissingHeader)
	}
	raw, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return nil, apperrors.NewUnauthorized(errBadScheme)
	}
	return g.verify(strings.TrimSpace(raw))
}

func (g *Guard) verify(raw string) (*domain.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := g.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return g.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthorized(err)
	}
	if !parsed.Valid {
		return nil, apperrors.NewUnauthorized(jwt.ErrTokenUnverifiable)
	}
	if claims.Email == "" {
		return nil, apperrors.NewUnauthorized(errMissingEmail)
	}

	out := &domain.Claims{Email: claims.Email}
	if claims.NotBefore != nil {
		out.NotBefore = claims.NotBefore.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
