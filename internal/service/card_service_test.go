package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/service"
	"github.com/phrazzld/mesto-api/internal/store"
)

// fakeCardStore is an in-memory CardStore for service tests.
type fakeCardStore struct {
	cards map[domain.ID]*domain.Card

	deleteCalls int
}

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{cards: make(map[domain.ID]*domain.Card)}
}

func (s *fakeCardStore) Create(_ context.Context, card *domain.Card) error {
	copied := *card
	copied.Likes = append([]domain.ID{}, card.Likes...)
	s.cards[card.ID] = &copied
	return nil
}

func (s *fakeCardStore) GetByID(_ context.Context, id domain.ID) (*domain.Card, error) {
	card, ok := s.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	copied := *card
	copied.Likes = append([]domain.ID{}, card.Likes...)
	return &copied, nil
}

func (s *fakeCardStore) List(_ context.Context) ([]*domain.Card, error) {
	cards := make([]*domain.Card, 0, len(s.cards))
	for _, card := range s.cards {
		copied := *card
		copied.Likes = append([]domain.ID{}, card.Likes...)
		cards = append(cards, &copied)
	}
	return cards, nil
}

func (s *fakeCardStore) Delete(_ context.Context, id domain.ID) error {
	s.deleteCalls++
	if _, ok := s.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(s.cards, id)
	return nil
}

func (s *fakeCardStore) AddLike(_ context.Context, cardID, userID domain.ID) error {
	card, ok := s.cards[cardID]
	if !ok {
		return store.ErrCardNotFound
	}
	if !card.LikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return nil
}

func (s *fakeCardStore) RemoveLike(_ context.Context, cardID, userID domain.ID) error {
	card, ok := s.cards[cardID]
	if !ok {
		return nil
	}
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	return nil
}

func (s *fakeCardStore) WithTx(*sql.Tx) store.CardStore { return s }

func newCardFixture(t *testing.T, cardStore *fakeCardStore, owner domain.ID) *domain.Card {
	t.Helper()
	card, err := domain.NewCard(owner, "Sunset", "https://example.com/sunset.jpg")
	require.NoError(t, err)
	require.NoError(t, cardStore.Create(context.Background(), card))
	return card
}

func TestCardServiceCreateCard(t *testing.T) {
	t.Parallel()

	cardStore := newFakeCardStore()
	svc := service.NewCardService(cardStore, nil)
	owner := domain.NewID()

	card, err := svc.CreateCard(context.Background(), owner, "Sunset", "https://example.com/sunset.jpg")
	require.NoError(t, err)

	assert.Equal(t, owner, card.OwnerID)
	assert.Contains(t, cardStore.cards, card.ID)

	_, err = svc.CreateCard(context.Background(), owner, "x", "https://example.com/sunset.jpg")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCardServiceDeleteCard(t *testing.T) {
	t.Parallel()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()

		cardStore := newFakeCardStore()
		svc := service.NewCardService(cardStore, nil)
		owner := domain.NewID()
		card := newCardFixture(t, cardStore, owner)

		deleted, err := svc.DeleteCard(context.Background(), owner, card.ID)
		require.NoError(t, err)
		assert.Equal(t, card.ID, deleted.ID)
		assert.NotContains(t, cardStore.cards, card.ID)
	})

	t.Run("non-owner is rejected and the card survives", func(t *testing.T) {
		t.Parallel()

		cardStore := newFakeCardStore()
		svc := service.NewCardService(cardStore, nil)
		card := newCardFixture(t, cardStore, domain.NewID())

		_, err := svc.DeleteCard(context.Background(), domain.NewID(), card.ID)
		assert.ErrorIs(t, err, service.ErrNotOwned)

		// The ownership check ran before any side effect.
		assert.Zero(t, cardStore.deleteCalls)
		assert.Contains(t, cardStore.cards, card.ID)
	})

	t.Run("missing card is not found, even for a would-be owner", func(t *testing.T) {
		t.Parallel()

		cardStore := newFakeCardStore()
		svc := service.NewCardService(cardStore, nil)

		_, err := svc.DeleteCard(context.Background(), domain.NewID(), domain.NewID())
		assert.ErrorIs(t, err, store.ErrCardNotFound)
	})
}

func TestCardServiceLikeCard(t *testing.T) {
	t.Parallel()

	cardStore := newFakeCardStore()
	svc := service.NewCardService(cardStore, nil)
	card := newCardFixture(t, cardStore, domain.NewID())
	liker := domain.NewID()

	liked, err := svc.LikeCard(context.Background(), liker, card.ID)
	require.NoError(t, err)
	assert.True(t, liked.LikedBy(liker))
	assert.Len(t, liked.Likes, 1)

	// Liking again is idempotent.
	liked, err = svc.LikeCard(context.Background(), liker, card.ID)
	require.NoError(t, err)
	assert.Len(t, liked.Likes, 1)

	// Anyone can like, not just the owner.
	other := domain.NewID()
	liked, err = svc.LikeCard(context.Background(), other, card.ID)
	require.NoError(t, err)
	assert.Len(t, liked.Likes, 2)

	_, err = svc.LikeCard(context.Background(), liker, domain.NewID())
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCardServiceUnlikeCard(t *testing.T) {
	t.Parallel()

	cardStore := newFakeCardStore()
	svc := service.NewCardService(cardStore, nil)
	card := newCardFixture(t, cardStore, domain.NewID())
	liker := domain.NewID()

	_, err := svc.LikeCard(context.Background(), liker, card.ID)
	require.NoError(t, err)

	unliked, err := svc.UnlikeCard(context.Background(), liker, card.ID)
	require.NoError(t, err)
	assert.False(t, unliked.LikedBy(liker))

	// Removing an absent like is a no-op.
	unliked, err = svc.UnlikeCard(context.Background(), liker, card.ID)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)
}
