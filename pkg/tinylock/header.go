package tinylock

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

// FormatVersion is the blob layout revision written by this package.
const FormatVersion uint8 = 1

const headerSize = 12

// header is the fixed-size format tag at the front of every blob.
// It records the layout version and the argon2id cost parameters so a future
// revision can change either without breaking the ability to read old blobs.
type header struct {
	version   uint8
	memoryKiB uint64
	time      uint8
	threads   uint8
	keyLen    uint8
}

func newHeader() header {
	return header{
		version:   FormatVersion,
		memoryKiB: kdfMemoryKiB,
		time:      kdfTime,
		threads:   kdfThreads,
		keyLen:    KeySize,
	}
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.version),
		bin.Int(&h.memoryKiB),
		bin.Byte(&h.time),
		bin.Byte(&h.threads),
		bin.Byte(&h.keyLen),
	)
}

func (h *header) encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := h.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *header) decode(data []byte) error {
	if len(data) < headerSize {
		return fmt.Errorf("%w: truncated header", ErrMalformedData)
	}
	if err := h.mapper().Read(bytes.NewReader(data[:headerSize]), binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return nil
}

// validate accepts only the pinned version 1 parameter set. Cost fields read
// from untrusted input are never fed into key derivation.
func (h *header) validate() error {
	if h.version != FormatVersion {
		return fmt.Errorf("%w: unsupported format version %d", ErrMalformedData, h.version)
	}
	if h.memoryKiB != kdfMemoryKiB || h.time != kdfTime || h.threads != kdfThreads || h.keyLen != KeySize {
		return fmt.Errorf("%w: unrecognized key derivation parameters", ErrMalformedData)
	}
	return nil
}
