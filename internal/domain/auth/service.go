package auth

import "context"

// AuthService issues tokens for the time-clock terminal and admin screens.
// Session/lock-screen behavior lives entirely in the frontend.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// SSEToken issues a short-lived token for the dashboard event stream,
	// which cannot carry an Authorization header.
	SSEToken(ctx context.Context) (SSETokenResponse, error)
}
