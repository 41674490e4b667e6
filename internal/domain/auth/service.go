package auth

import "context"

// AuthService defines business logic for admin authentication
type AuthService interface {
	// Login verifies credentials against the credentials file and issues an
	// access token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Logout revokes an issued token.
	Logout(ctx context.Context, token string) error
}
