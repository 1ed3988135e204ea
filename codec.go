package mime

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ErrNotRepresentable is returned by EncodeBytes when the string contains a
// code point above U+00FF and so has no single-byte representation.
var ErrNotRepresentable = errors.New("string is not representable as bytes")

// DecodeBytes maps a byte string onto text, one code point per byte: bytes
// below 0x80 are themselves, and bytes 0x80-0xFF become the Latin-1
// Supplement code points at the same values. This is the ISO 8859-1 decode,
// it accepts any input, and it never loses information; EncodeBytes reverses
// it exactly.
func DecodeBytes(b []byte) string {
	// The ISO 8859-1 decoder is total over bytes and cannot fail.
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(s)
}

// EncodeBytes maps text back onto bytes, inverting DecodeBytes. It operates
// on the string's code points, not its encoded bytes, and returns
// ErrNotRepresentable if any code point lies above U+00FF. Use this whenever
// a value of unknown provenance must be written into a byte-oriented
// transport field.
func EncodeBytes(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotRepresentable, err)
	}
	return b, nil
}
