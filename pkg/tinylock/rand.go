package tinylock

import (
	"crypto/rand"
	"fmt"
)

// randBytes reads length bytes from the OS entropy pool.
func randBytes(length int) ([]byte, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return buf, nil
}
