package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mesto-api/internal/domain"
)

const testSecret = "test-secret-that-is-at-least-32-chars!"

// newTestJWTService returns a service whose clock is pinned to now, so
// expiry behavior can be tested deterministically.
func newTestJWTService(t *testing.T, lifetime time.Duration, now time.Time) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(testSecret, lifetime)
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	impl.timeFunc = func() time.Time { return now }
	return impl
}

func TestNewJWTServiceRejectsBadInputs(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService("too-short", time.Hour)
	assert.Error(t, err)

	_, err = NewJWTService(testSecret, 0)
	assert.Error(t, err)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, time.Hour, now)
	userID := domain.NewID()

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTServiceExpiredToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, time.Hour, now)

	token, err := svc.GenerateToken(context.Background(), domain.NewID())
	require.NoError(t, err)

	// Advance past the lifetime plus the allowed clock skew.
	svc.timeFunc = func() time.Time { return now.Add(time.Hour + 3*time.Minute) }

	claims, err := svc.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTServiceWithinClockSkew(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, time.Hour, now)

	token, err := svc.GenerateToken(context.Background(), domain.NewID())
	require.NoError(t, err)

	// Just past expiry but inside the skew window: still accepted.
	svc.timeFunc = func() time.Time { return now.Add(time.Hour + time.Minute) }

	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)
}

func TestJWTServiceWrongKey(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, time.Hour, now)
	other := newTestJWTService(t, time.Hour, now)
	other.signingKey = []byte("a-completely-different-32-char-key!!")

	token, err := other.GenerateToken(context.Background(), domain.NewID())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceMalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, time.Hour, time.Now())

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		claims, err := svc.ValidateToken(context.Background(), token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestJWTServiceRejectsMissingUserIDClaim(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t, time.Hour, time.Now())

	// A token signed with an empty user ID must not validate.
	token, err := svc.GenerateToken(context.Background(), "")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
