package auth

import (
	"context"
)

type AuthService interface {
	// Identify classifies an email for the login form. Employees are
	// checked before administrators.
	Identify(ctx context.Context, req IdentifyRequest) (IdentifyResponse, error)

	// Login authenticates either role. clientIP is the already
	// extracted remote address, normalized inside.
	Login(ctx context.Context, req LoginRequest, clientIP string) (LoginResponse, error)

	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
