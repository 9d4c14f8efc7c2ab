package transfer

import "github.com/golang-jwt/jwt/v5"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is what the remote auth endpoint returns on success.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type CustomClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
