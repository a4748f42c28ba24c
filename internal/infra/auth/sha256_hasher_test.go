package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_HashIsDeterministic(t *testing.T) {
	hasher := NewSHA256Hasher()

	first, err := hasher.Hash("pw")
	require.NoError(t, err)
	second, err := hasher.Hash("pw")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, "pw", first)
}

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	hasher := NewSHA256Hasher()

	// base64(sha256("password")), the format earlier deployments stored.
	digest, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg=", digest)
}

func TestSHA256Hasher_EmptyInput(t *testing.T) {
	hasher := NewSHA256Hasher()

	digest, err := hasher.Hash("")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.True(t, hasher.Check("", digest))
}

func TestSHA256Hasher_Check(t *testing.T) {
	hasher := NewSHA256Hasher()

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, hasher.Check("correct horse battery staple", digest))
	assert.False(t, hasher.Check("wrong password", digest))
	assert.False(t, hasher.Check("correct horse battery staple", "not-a-digest"))
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(0)

	digest, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", digest)

	assert.True(t, hasher.Check("pw", digest))
	assert.False(t, hasher.Check("other", digest))
	assert.False(t, hasher.Check("pw", "invalid_hash"))
}
