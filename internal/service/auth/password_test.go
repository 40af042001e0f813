package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/mesto-api/internal/service/auth"
)

func TestBcryptHasherHashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(4) // Minimum cost keeps the test fast

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	// The digest must never equal the plaintext and must be self-salting.
	assert.NotEqual(t, "correct horse battery staple", digest)
	digest2, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, digest, digest2)

	assert.True(t, hasher.Verify("correct horse battery staple", digest))
	assert.False(t, hasher.Verify("wrong password", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestBcryptHasherEmptyPassword(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(4)

	digest, err := hasher.Hash("")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
	assert.Empty(t, digest)
}

func TestBcryptHasherVerifyGarbageDigest(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(4)
	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-digest"))
}
