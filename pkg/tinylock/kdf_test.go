package tinylock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	salt, err := randBytes(SaltSize)
	require.NoError(t, err)

	key, err := deriveKey([]byte("a test password"), salt)
	require.NoError(t, err)
	assert.Len(t, key, KeySize)

	// Same password and salt must reproduce the same key, or decryption of a
	// stored blob could never succeed.
	again, err := deriveKey([]byte("a test password"), salt)
	require.NoError(t, err)
	assert.Equal(t, key, again)
}

func TestDeriveKey_SaltSeparation(t *testing.T) {
	saltA, err := randBytes(SaltSize)
	require.NoError(t, err)
	saltB, err := randBytes(SaltSize)
	require.NoError(t, err)

	keyA, err := deriveKey([]byte("shared password"), saltA)
	require.NoError(t, err)
	keyB, err := deriveKey([]byte("shared password"), saltB)
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyB)
}

func TestDeriveKey_EmptyPassword(t *testing.T) {
	salt, err := randBytes(SaltSize)
	require.NoError(t, err)

	key, err := deriveKey(nil, salt)
	require.NoError(t, err)
	assert.Len(t, key, KeySize)
}
