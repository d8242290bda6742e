package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverEqualsPlaintext(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.NotContains(t, hash, "secret123")
}

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	parts := strings.SplitN(hash, ".", 2)
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}

func TestHashPasswordSaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("secret124", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("secret123", "not-a-hash"))
	assert.False(t, VerifyPassword("secret123", "only.two!!invalid$$base64"))
	assert.False(t, VerifyPassword("secret123", ""))
}

func TestVerifyPasswordKnownHash(t *testing.T) {
	// scrypt(N=32768, r=8, p=1) of "secret123" with a fixed salt.
	const encoded = "MDEyMzQ1Njc4OWFiY2RlZg.YGnDtx1N98s7wKo2vuqrx5l4f/UzVM/SlzP1PLtThz4"

	assert.True(t, VerifyPassword("secret123", encoded))
	assert.False(t, VerifyPassword("secret1234", encoded))
}
