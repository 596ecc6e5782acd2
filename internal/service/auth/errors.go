package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. Both cases share it so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("Invalid credentials") //nolint:staticcheck

	// ErrUnauthorized is returned by Verify for any token that cannot be trusted.
	ErrUnauthorized = errors.New("unauthorized")
)
