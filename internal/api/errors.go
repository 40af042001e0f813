// Package api implements the HTTP boundary: handlers, request models, and
// the single place where internal errors become status codes.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/service"
	"github.com/phrazzld/mesto-api/internal/service/auth"
	"github.com/phrazzld/mesto-api/internal/store"
)

// Stable response messages per error kind. Handlers never invent their own
// wording for these cases.
const (
	msgAuthorizationRequired = "Authorization required"
	msgForbidden             = "You do not have permission to modify this resource"
	msgUserNotFound          = "User not found"
	msgCardNotFound          = "Card not found"
	msgResourceNotFound      = "Resource not found"
	msgEmailExists           = "A user with this email already exists"
	msgInternalError         = "An unexpected error occurred"
	msgInvalidRequest        = "Invalid request data"
)

// MapErrorToStatusCode translates internal errors to HTTP status codes. This
// is the only place that mapping lives; everything below the API layer deals
// in sentinel errors, not status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Validation failures, including malformed IDs in the path.
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Authentication failures. Invalid credentials at signin and token
	// problems at the middleware both land on 401.
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authenticated but not the owner.
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message that is safe to expose to clients.
// Internal details (driver errors, stack context) never leak; validation
// errors keep enough detail to tell the caller which input was rejected.
func GetSafeErrorMessage(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Invalid request: %s", validationErr.Error())
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return describeFieldError(fieldErrs[0])
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		// Domain sentinels carry their own caller-safe wording.
		return "Invalid request: " + strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Incorrect email or password"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return msgAuthorizationRequired

	case errors.Is(err, service.ErrNotOwned):
		return msgForbidden

	case errors.Is(err, store.ErrUserNotFound):
		return msgUserNotFound

	case errors.Is(err, store.ErrCardNotFound):
		return msgCardNotFound

	case store.IsNotFoundError(err):
		return msgResourceNotFound

	case errors.Is(err, store.ErrEmailExists):
		return msgEmailExists

	case store.IsDuplicateError(err):
		return "Resource already exists"

	default:
		return msgInternalError
	}
}

// describeFieldError turns a single validator field error into a client-facing
// message without exposing struct internals.
func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Invalid request: %s is required", field)
	case "email":
		return fmt.Sprintf("Invalid request: %s must be a valid email address", field)
	case "imageurl", "url":
		return fmt.Sprintf("Invalid request: %s must be a valid URL", field)
	case "min":
		return fmt.Sprintf("Invalid request: %s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("Invalid request: %s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid request: %s is invalid", field)
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// standard error response. Unexpected errors (anything mapping to 500) are
// logged with full detail; the client only sees the generic message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed with internal error",
			"error", err,
			"status", status,
			"path", r.URL.Path,
			"method", r.Method)
	} else {
		log.Debug("request failed",
			"error", err,
			"status", status,
			"path", r.URL.Path,
			"method", r.Method)
	}

	shared.RespondWithError(w, r, status, message)
}
