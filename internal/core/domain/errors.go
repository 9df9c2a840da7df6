package domain

import "errors"

// Sentinel errors recognized by the API boundary. Each maps to exactly one
// HTTP status in the central error handler; services return these and never
// touch status codes themselves.
var (
	// ErrInvalidCredentials covers both "email not found" and "wrong
	// password" so the two cases are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	ErrForbidden     = errors.New("access forbidden")
	ErrProtectedUser = errors.New("cannot delete the primary admin user")

	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")

	ErrEmailTaken    = errors.New("email address is already in use")
	ErrUsernameTaken = errors.New("username is already in use")

	ErrUnknownRole = errors.New("unknown role")

	ErrTooManyAttempts = errors.New("too many login attempts")
)
