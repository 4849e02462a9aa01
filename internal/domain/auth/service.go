package auth

import "context"

// AuthService verifies the single credential field against the credentialed
// employees. No sessions or tokens: the kiosk runs one local session.
type AuthService interface {
	// Login matches the password against stored hashes. A successful
	// owner/manager login also performs the opening check-in for the
	// current shift.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
