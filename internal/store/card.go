package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID, likes included.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id domain.ID) (*domain.Card, error)

	// List returns all cards with their likes.
	List(ctx context.Context) ([]*domain.Card, error)

	// Delete removes a card by its ID. Likes go with it (cascade).
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id domain.ID) error

	// AddLike adds the user to the card's likers set. Adding an existing
	// like is a no-op: the operation is a single atomic set-add, never a
	// read-modify-write.
	// Returns ErrCardNotFound if the card does not exist.
	AddLike(ctx context.Context, cardID, userID domain.ID) error

	// RemoveLike removes the user from the card's likers set. Removing an
	// absent like is a no-op, not an error, including when the card itself
	// does not exist.
	RemoveLike(ctx context.Context, cardID, userID domain.ID) error

	// WithTx returns a CardStore that runs its operations on the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) CardStore
}
