package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/token-service/internal/config"
)

var signingMethod = jwt.SigningMethodHS256

// ErrEmptySecret is returned by constructors when no signing secret is configured.
var ErrEmptySecret = errors.New("auth: empty signing secret")

// tokenClaims describes the JWT payload.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Option customizes an Issuer or Guard.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for nbf/exp.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func secretFrom(cfg config.AuthConfig) ([]byte, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrEmptySecret
	}
	return []byte(cfg.JWTSecret), nil
}
