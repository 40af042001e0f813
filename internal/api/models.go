package api

import "github.com/phrazzld/mesto-api/internal/domain"

// Request models with validation tags. The tags are the single declarative
// statement of each endpoint's input rules; handlers run them through
// shared.Validate before touching the service layer.

// SignupRequest is the request body for user registration. Profile fields
// are optional; the domain applies defaults when they are omitted.
type SignupRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=30"`
	About    string `json:"about" validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar" validate:"omitempty,imageurl"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest is the request body for authentication.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the request body for a partial profile update.
// Pointer fields distinguish "absent" from "empty"; an absent field is left
// unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=30"`
	About *string `json:"about" validate:"omitempty,min=2,max=30"`
}

// UpdateAvatarRequest is the request body for replacing the avatar link.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,imageurl"`
}

// CreateCardRequest is the request body for card creation. The owner comes
// from the authenticated context, never from the body.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,imageurl"`
}

// Response envelopes. Every success body wraps its payload under a fixed
// top-level key so clients can rely on the shape.

// UserEnvelope wraps a single account payload.
type UserEnvelope struct {
	User *domain.User `json:"user"`
}

// TokenEnvelope wraps the signed token issued at signin.
type TokenEnvelope struct {
	Token string `json:"token"`
}

// DataEnvelope wraps list and card payloads.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}
