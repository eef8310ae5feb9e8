package tinylock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	const password = "password"
	const data = "Hello world!"
	dataBytes := []byte(data)

	encrypted, err := Encrypt(dataBytes, []byte(password))
	require.NoError(t, err)
	assert.Len(t, encrypted, Overhead+len(data))
	assert.NotEqual(t, dataBytes, encrypted)

	decrypted, err := Decrypt(encrypted, []byte(password))
	require.NoError(t, err)
	assert.Equal(t, data, string(decrypted))
}

func TestDecrypt_WrongPassword(t *testing.T) {
	encrypted, err := Encrypt([]byte("Hello world!"), []byte("password"))
	require.NoError(t, err)

	decrypted, err := Decrypt(encrypted, []byte("wrong"))
	assert.ErrorIs(t, err, ErrIncorrectPassword)
	assert.Nil(t, decrypted)
}

func TestEncrypt_FreshSaltAndNonce(t *testing.T) {
	const password = "same password"
	data := []byte("same plaintext")

	first, err := Encrypt(data, []byte(password))
	require.NoError(t, err)
	second, err := Encrypt(data, []byte(password))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	decrypted, err := Decrypt(first, []byte(password))
	require.NoError(t, err)
	assert.Equal(t, data, decrypted)
	decrypted, err = Decrypt(second, []byte(password))
	require.NoError(t, err)
	assert.Equal(t, data, decrypted)
}

func TestEncryptDecrypt_EmptyPlaintext(t *testing.T) {
	encrypted, err := Encrypt(nil, []byte("password"))
	require.NoError(t, err)
	assert.Len(t, encrypted, Overhead)

	decrypted, err := Decrypt(encrypted, []byte("password"))
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

func TestEncryptDecrypt_EmptyPassword(t *testing.T) {
	data := []byte("secret data")

	encrypted, err := Encrypt(data, nil)
	require.NoError(t, err)

	decrypted, err := Decrypt(encrypted, nil)
	require.NoError(t, err)
	assert.Equal(t, data, decrypted)

	_, err = Decrypt(encrypted, []byte("anything"))
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestDecrypt_ShortInput(t *testing.T) {
	for _, size := range []int{0, 1, headerSize, Overhead - 1} {
		_, err := Decrypt(make([]byte, size), []byte("password"))
		assert.ErrorIs(t, err, ErrMalformedData, "input of %d bytes should be rejected", size)
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	const password = "password"
	encrypted, err := Encrypt([]byte("Hello world!"), []byte(password))
	require.NoError(t, err)

	// One flipped bit in each region of the blob: header version, header cost
	// field, salt, nonce, ciphertext body, and tag.
	offsets := []int{
		0,
		headerSize - 1,
		headerSize,
		headerSize + SaltSize,
		headerSize + SaltSize + NonceSize,
		len(encrypted) - 1,
	}
	for _, offset := range offsets {
		tampered := make([]byte, len(encrypted))
		copy(tampered, encrypted)
		tampered[offset] ^= 0x01

		decrypted, err := Decrypt(tampered, []byte(password))
		assert.Nil(t, decrypted, "tampering at offset %d must not yield plaintext", offset)
		if !errors.Is(err, ErrIncorrectPassword) && !errors.Is(err, ErrMalformedData) {
			t.Errorf("tampering at offset %d: got %v, want ErrIncorrectPassword or ErrMalformedData", offset, err)
		}
	}
}

func TestDecrypt_Concurrent(t *testing.T) {
	const password = "password"
	data := []byte("concurrent use is safe")
	encrypted, err := Encrypt(data, []byte(password))
	require.NoError(t, err)

	done := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			decrypted, err := Decrypt(encrypted, []byte(password))
			if err == nil && string(decrypted) != string(data) {
				err = errors.New("plaintext mismatch")
			}
			done <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-done)
	}
}
