package domain

import (
	"fmt"
	"time"
)

// Card-specific validation errors. All wrap ErrValidation.
var (
	// ErrCardIDEmpty is returned when a card ID is empty.
	ErrCardIDEmpty = fmt.Errorf("%w: card ID cannot be empty", ErrValidation)

	// ErrCardOwnerEmpty is returned when a card's owner ID is empty.
	ErrCardOwnerEmpty = fmt.Errorf("%w: card owner ID cannot be empty", ErrValidation)

	// ErrCardNameLength is returned when a card name is out of bounds.
	ErrCardNameLength = fmt.Errorf("%w: card name must be between 2 and 30 characters", ErrValidation)
)

// Card represents a shareable content card. The owner is fixed at creation
// from the authenticated caller and never changes. Likes is the set of
// account IDs that currently like the card; order carries no meaning.
type Card struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	OwnerID   ID        `json:"owner"`
	Likes     []ID      `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCard creates a Card owned by the given account.
// Returns an error if validation fails.
func NewCard(ownerID ID, name, link string) (*Card, error) {
	card := &Card{
		ID:        NewID(),
		Name:      name,
		Link:      link,
		OwnerID:   ownerID,
		Likes:     []ID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks the Card's invariants.
func (c *Card) Validate() error {
	if c.ID.IsZero() {
		return ErrCardIDEmpty
	}
	if c.OwnerID.IsZero() {
		return ErrCardOwnerEmpty
	}
	if !validProfileString(c.Name) {
		return ErrCardNameLength
	}
	if !ValidLink(c.Link) {
		return ErrInvalidLink
	}
	return nil
}

// LikedBy reports whether the given account currently likes the card.
func (c *Card) LikedBy(userID ID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
