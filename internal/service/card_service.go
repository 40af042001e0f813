package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// CardService provides card lifecycle operations.
type CardService interface {
	// ListCards returns all cards.
	ListCards(ctx context.Context) ([]*domain.Card, error)

	// CreateCard creates a card owned by the authenticated caller. The owner
	// is never accepted from client input.
	CreateCard(ctx context.Context, ownerID domain.ID, name, link string) (*domain.Card, error)

	// DeleteCard removes a card after checking that the caller owns it.
	// Returns store.ErrCardNotFound if the card is absent and ErrNotOwned if
	// the caller is not the owner. The ownership check always precedes the
	// delete side effect.
	DeleteCard(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error)

	// LikeCard adds the caller to the card's likers set. Idempotent.
	LikeCard(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error)

	// UnlikeCard removes the caller from the card's likers set. Removing an
	// absent like is a no-op, not an error.
	UnlikeCard(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error)
}

// cardServiceImpl implements the CardService interface.
type cardServiceImpl struct {
	cardStore store.CardStore
	logger    *slog.Logger
}

// NewCardService creates a new CardService.
func NewCardService(cardStore store.CardStore, logger *slog.Logger) CardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cardServiceImpl{
		cardStore: cardStore,
		logger:    logger.With(slog.String("component", "card_service")),
	}
}

// authorizeOwner is the single ownership predicate used by every mutating
// card operation that requires it.
func authorizeOwner(callerID domain.ID, card *domain.Card) error {
	if card.OwnerID != callerID {
		return ErrNotOwned
	}
	return nil
}

// ListCards implements CardService.ListCards.
func (s *cardServiceImpl) ListCards(ctx context.Context) ([]*domain.Card, error) {
	cards, err := s.cardStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list cards", "error", err)
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// CreateCard implements CardService.CreateCard.
func (s *cardServiceImpl) CreateCard(ctx context.Context, ownerID domain.ID, name, link string) (*domain.Card, error) {
	card, err := domain.NewCard(ownerID, name, link)
	if err != nil {
		return nil, err
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		s.logger.Error("failed to save card", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.logger.Debug("card created", "card_id", card.ID, "owner_id", ownerID)
	return card, nil
}

// DeleteCard implements CardService.DeleteCard.
func (s *cardServiceImpl) DeleteCard(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error) {
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		if !errors.Is(err, store.ErrCardNotFound) {
			s.logger.Error("failed to retrieve card for deletion", "error", err, "card_id", cardID)
		}
		return nil, err
	}

	if err := authorizeOwner(callerID, card); err != nil {
		s.logger.Debug("rejected delete of card by non-owner",
			"card_id", cardID, "caller_id", callerID, "owner_id", card.OwnerID)
		return nil, err
	}

	if err := s.cardStore.Delete(ctx, cardID); err != nil {
		if !errors.Is(err, store.ErrCardNotFound) {
			s.logger.Error("failed to delete card", "error", err, "card_id", cardID)
		}
		return nil, err
	}

	s.logger.Debug("card deleted", "card_id", cardID, "owner_id", callerID)
	return card, nil
}

// LikeCard implements CardService.LikeCard.
func (s *cardServiceImpl) LikeCard(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error) {
	if err := s.cardStore.AddLike(ctx, cardID, callerID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to like card", "error", err, "card_id", cardID)
		}
		return nil, err
	}

	return s.cardStore.GetByID(ctx, cardID)
}

// UnlikeCard implements CardService.UnlikeCard.
func (s *cardServiceImpl) UnlikeCard(ctx context.Context, callerID, cardID domain.ID) (*domain.Card, error) {
	if err := s.cardStore.RemoveLike(ctx, cardID, callerID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to unlike card", "error", err, "card_id", cardID)
		}
		return nil, err
	}

	return s.cardStore.GetByID(ctx, cardID)
}
