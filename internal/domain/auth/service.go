package auth

import "context"

// AuthService covers the dashboard's login surface: admin login/registration,
// password-reset requests, and the "who am I" lookup the top bar renders.
type AuthService interface {
	LoginAdmin(ctx context.Context, req LoginRequest) (LoginResponse, error)
	RegisterAdmin(ctx context.Context, req RegisterRequest) (LoginResponse, error)

	// RequestReset issues a short-lived reset token for the account. Mail
	// delivery is out of scope; the token is returned to the caller.
	RequestReset(ctx context.Context, req RequestResetRequest) (string, error)

	// Me resolves the authenticated admin from the request context claims.
	Me(ctx context.Context) (MeResponse, error)
}
