// Package service provides application-level services for accounts and cards.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Service methods return these for expected conditions; the API layer maps
// them to HTTP status codes exactly once, at the boundary.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. The API layer maps this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")
)
