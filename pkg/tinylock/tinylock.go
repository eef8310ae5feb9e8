package tinylock

// Encrypt seals data under a key derived from password and returns a
// self-contained blob laid out as [header][salt][nonce][ciphertext||tag].
// The salt and nonce are freshly random on every call, so encrypting the same
// input twice produces two different blobs that both decrypt correctly.
//
// The only realistic failure is ErrKeyDerivation when argon2id can't allocate
// its working memory.
func Encrypt(data, password []byte) ([]byte, error) {
	salt, err := randBytes(SaltSize)
	if err != nil {
		return nil, err
	}
	nonce, err := randBytes(NonceSize)
	if err != nil {
		return nil, err
	}
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer Zero(key)
	ciphertext, err := seal(key, nonce, data)
	if err != nil {
		return nil, err
	}
	return encodeEnvelope(salt, nonce, ciphertext)
}

// Decrypt reverses Encrypt, recovering the salt and nonce from the blob
// itself and re-deriving the key from password.
//
// Failures are matchable with errors.Is: ErrMalformedData when the input
// isn't a blob produced by Encrypt, ErrIncorrectPassword when the
// authentication tag doesn't verify, and ErrKeyDerivation when argon2id can't
// allocate its working memory.
func Decrypt(data, password []byte) ([]byte, error) {
	salt, nonce, ciphertext, err := decodeEnvelope(data)
	if err != nil {
		return nil, err
	}
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer Zero(key)
	return open(key, nonce, ciphertext)
}
