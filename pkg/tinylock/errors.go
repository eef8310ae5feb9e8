package tinylock

import "errors"

var (
	// ErrIncorrectPassword is returned by Decrypt when the authentication tag doesn't verify.
	// A tag mismatch can't distinguish a wrong password from altered data, but the former is
	// overwhelmingly more likely, so that's how it's reported.
	ErrIncorrectPassword = errors.New("given password was incorrect")
	// ErrMalformedData is returned by Decrypt when the input can't be a blob produced by
	// Encrypt: too short, an unknown format version, or unrecognized derivation parameters.
	ErrMalformedData = errors.New("data is not a valid encrypted blob")
	// ErrKeyDerivation is returned when argon2id could not allocate its working memory.
	ErrKeyDerivation = errors.New("failed to derive key from password")
)
