/*
Package tinylock provides password-based authenticated encryption of arbitrary data.
This uses AES-256-GCM encryption with a key derived from the password via argon2id.

# How it works:

Encrypt generates a fresh random salt and nonce, stretches the password and salt into an AES-256 key with argon2id, and seals the plaintext under that key and nonce.
The salt and nonce are written into the returned blob together with a small format header, so the blob is the only thing that needs to be stored or transmitted.
Decrypt reads the salt and nonce back out of the blob, re-derives the same key from the given password, and verifies the authentication tag before returning any plaintext.

Argon2id is memory and CPU hard, so it's impractical to brute force a captured blob to recover the original password, and exposing the salt doesn't weaken the key.

# General guidelines:
  - A failed decryption almost always means the wrong password was entered. Match against ErrIncorrectPassword to prompt for re-entry instead of reporting corruption.
  - The derivation cost parameters are fixed in this package on purpose. Blobs record them in their header, and Decrypt refuses anything that doesn't match, so untrusted input can never choose its own derivation cost.
  - Every call to Encrypt produces a different blob, even for identical inputs, because the salt and nonce are always freshly random. Never compare blobs for equality.
  - GCM supports encrypting and authenticating at most about 64GB at a time, and this package holds the whole payload in memory. Split very large inputs yourself, or use something designed for streaming.
  - Any byte sequence is accepted as a password, including an empty one. Password quality is the caller's concern.
*/
package tinylock
