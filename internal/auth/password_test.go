package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("longenough1")
	require.NoError(t, err)
	require.NotEqual(t, "longenough1", digest)

	assert.True(t, hasher.Verify("longenough1", digest))
	assert.False(t, hasher.Verify("longenough2", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("longenough1")
	require.NoError(t, err)
	second, err := hasher.Hash("longenough1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
