package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a bearer token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates a failed login. Deliberately shared
	// between the unknown-email and wrong-password cases so responses don't
	// reveal which one occurred.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrEmptyPassword indicates the hasher was handed an empty plaintext,
	// which is a caller error rather than a hashing failure.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
