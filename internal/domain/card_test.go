package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mesto-api/internal/domain"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	owner := domain.NewID()

	t.Run("valid card", func(t *testing.T) {
		t.Parallel()

		card, err := domain.NewCard(owner, "Sunset", "https://example.com/sunset.jpg")
		require.NoError(t, err)

		assert.False(t, card.ID.IsZero())
		assert.Equal(t, owner, card.OwnerID)
		assert.Equal(t, "Sunset", card.Name)
		assert.NotNil(t, card.Likes)
		assert.Empty(t, card.Likes)
	})

	tests := []struct {
		name     string
		cardName string
		link     string
		wantErr  error
	}{
		{name: "name too short", cardName: "S", link: "https://example.com/x.jpg", wantErr: domain.ErrCardNameLength},
		{name: "invalid link", cardName: "Sunset", link: "nope", wantErr: domain.ErrInvalidLink},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			card, err := domain.NewCard(owner, tc.cardName, tc.link)
			assert.Nil(t, card)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()

		card, err := domain.NewCard("", "Sunset", "https://example.com/x.jpg")
		assert.Nil(t, card)
		assert.ErrorIs(t, err, domain.ErrCardOwnerEmpty)
	})
}

func TestCardLikedBy(t *testing.T) {
	t.Parallel()

	liker := domain.NewID()
	other := domain.NewID()

	card, err := domain.NewCard(domain.NewID(), "Sunset", "https://example.com/sunset.jpg")
	require.NoError(t, err)

	assert.False(t, card.LikedBy(liker))
	card.Likes = append(card.Likes, liker)
	assert.True(t, card.LikedBy(liker))
	assert.False(t, card.LikedBy(other))
}
