package auth

import (
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/token-service/internal/config"
	"github.com/spec-kit/token-service/internal/domain"
	apperrors "github.com/spec-kit/token-service/pkg/util/errorutil"
)

// Issuer signs tokens for submitted credentials.
type Issuer struct {
	secret []byte
	opts   options
}

// NewIssuer builds an issuer bound to the configured secret.
func NewIssuer(cfg config.AuthConfig, opts ...Option) (*Issuer, error) {
	secret, err := secretFrom(cfg)
	if err != nil {
		return nil, err
	}
	return &Issuer{secret: secret, opts: newOptions(opts)}, nil
}

// Issue validates creds and returns a signed compact token.
//
// The password is only checked for presence; there is no credential store.
func (i *Issuer) Issue(creds domain.Credentials) (string, error) {
	if creds.Email == "" {
		return "", apperrors.NewMissingParameter("email")
	}
	if creds.Password == "" {
		return "", apperrors.NewMissingParameter("password")
	}

	now := i.opts.now()
	claims := &tokenClaims{
		Email: creds.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(domain.TokenLifetime)),
		},
	}

	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString(i.secret)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return token, nil
}
