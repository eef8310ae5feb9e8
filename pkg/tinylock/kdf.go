package tinylock

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the AES-256 key length produced by key derivation.
	KeySize = 32

	// Argon2id cost parameters, fixed for format version 1.
	// 64MB / 3 passes / 4 lanes is the RFC 9106 low-memory recommendation.
	kdfMemoryKiB = 64 * 1024
	kdfTime      = 3
	kdfThreads   = 4
)

// deriveKey stretches a password and salt into an AES-256 key using argon2id.
// Any password length is accepted, including zero.
//
// argon2 panics if the working buffer can't be allocated, so that's recovered
// here and surfaced as ErrKeyDerivation rather than taking the process down.
func deriveKey(password, salt []byte) (key []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: %v", ErrKeyDerivation, r)
		}
	}()
	key = argon2.IDKey(password, salt, kdfTime, kdfMemoryKiB, kdfThreads, KeySize)
	return key, nil
}
