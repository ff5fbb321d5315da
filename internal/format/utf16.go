package format

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// Wire strings are UTF-16LE without a BOM. Keys carry their own NUL
// terminator; text values are sized by the header's wValueLength.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16 converts UTF-16LE bytes (no terminator) to a string.
func DecodeUTF16(b []byte) (string, error) {
	u8, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("utf16 decode: %w", err)
	}
	return string(u8), nil
}

// EncodeUTF16 converts s to UTF-16LE bytes without a terminator.
func EncodeUTF16(s string) ([]byte, error) {
	u16, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("utf16 encode: %w", err)
	}
	return u16, nil
}

// ReadUTF16Z reads a NUL-terminated UTF-16LE string starting at off and
// returns it together with the offset just past the terminator. The scan is
// bounded by end and by MaxKeyLen units.
func ReadUTF16Z(b []byte, off, end int) (string, int, error) {
	if end > len(b) {
		end = len(b)
	}
	limit := off + 2*MaxKeyLen
	if limit > end {
		limit = end
	}
	for i := off; i+1 < limit; i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			s, err := DecodeUTF16(b[off:i])
			if err != nil {
				return "", 0, err
			}
			return s, i + 2, nil
		}
	}
	return "", 0, fmt.Errorf("key missing NUL terminator at offset %d: %w", off, ErrFormat)
}
