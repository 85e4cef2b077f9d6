package dto

import "github.com/spec-kit/token-service/internal/domain"

// LoginRequest payload for POST /auth.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials converts the payload to the domain type.
func (r LoginRequest) Credentials() domain.Credentials {
	return domain.Credentials{Email: r.Email, Password: r.Password}
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ContentsResponse mirrors the token claims as unix timestamps.
type ContentsResponse struct {
	Exp   int64  `json:"exp"`
	Email string `json:"email"`
	Nbf   int64  `json:"nbf"`
}

// NewContentsResponse builds the introspection body from decoded claims.
func NewContentsResponse(claims *domain.Claims) ContentsResponse {
	return ContentsResponse{
		Exp:   claims.ExpiresAt.Unix(),
		Email: claims.Email,
		Nbf:   claims.NotBefore.Unix(),
	}
}
