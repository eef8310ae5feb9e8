package tinylock

import (
	"crypto/aes"
	"crypto/cipher"
)

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal encrypts and authenticates plaintext under the given key and nonce.
// The tag is appended to the returned ciphertext.
func seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// open verifies and decrypts a sealed ciphertext. A tag mismatch carries no
// information about whether the key was wrong or the bytes were altered, so
// every verification failure maps to ErrIncorrectPassword and no partial
// plaintext is ever returned.
func open(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrIncorrectPassword
	}
	return plaintext, nil
}
