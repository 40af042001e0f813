// Package store provides abstractions and implementations for data persistence.
package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must carry a hashed
	// password; the plaintext never reaches this layer.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user never includes the credential digest.
	GetByID(ctx context.Context, id domain.ID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address, including the
	// credential digest. This is the authentication projection; every other
	// read path omits the digest.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users, digest omitted.
	List(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile changes the name and/or about fields of a user in a
	// single statement. A nil field is left untouched.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id domain.ID, name, about *string) (*domain.User, error)

	// UpdateAvatar changes a user's avatar reference.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id domain.ID, avatar string) (*domain.User, error)

	// WithTx returns a UserStore that runs its operations on the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
