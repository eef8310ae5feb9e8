package tinylock

import "fmt"

const (
	// SaltSize is the length of the random argon2id salt stored in every blob.
	SaltSize = 16
	// NonceSize is the length of the random GCM nonce stored in every blob.
	NonceSize = 12
	// TagSize is the length of the GCM authentication tag appended to the ciphertext.
	TagSize = 16

	// Overhead is the number of bytes Encrypt adds on top of the plaintext length.
	// It's also the minimum valid blob length, reached by an empty plaintext.
	Overhead = headerSize + SaltSize + NonceSize + TagSize
)

// encodeEnvelope concatenates the format header, salt, nonce, and sealed
// ciphertext into a single blob. All fields before the ciphertext have fixed
// lengths, so no framing is needed; the ciphertext runs to the end.
func encodeEnvelope(salt, nonce, ciphertext []byte) ([]byte, error) {
	hdr := newHeader()
	hdrBytes, err := hdr.encode()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(hdrBytes)+len(salt)+len(nonce)+len(ciphertext))
	out = append(out, hdrBytes...)
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// decodeEnvelope splits a blob back into salt, nonce, and sealed ciphertext.
// Length and header checks happen before any cryptographic work, so malformed
// input never reaches key derivation.
func decodeEnvelope(data []byte) (salt, nonce, ciphertext []byte, err error) {
	if len(data) < Overhead {
		return nil, nil, nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte minimum", ErrMalformedData, len(data), Overhead)
	}
	var hdr header
	if err := hdr.decode(data); err != nil {
		return nil, nil, nil, err
	}
	if err := hdr.validate(); err != nil {
		return nil, nil, nil, err
	}
	salt = data[headerSize : headerSize+SaltSize]
	nonce = data[headerSize+SaltSize : headerSize+SaltSize+NonceSize]
	ciphertext = data[headerSize+SaltSize+NonceSize:]
	return salt, nonce, ciphertext, nil
}
