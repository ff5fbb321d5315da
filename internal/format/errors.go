package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes a structure declared.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrFormat indicates a malformed record (bad lengths, missing terminators,
	// unparsable version components).
	ErrFormat = errors.New("format: malformed record")
)
