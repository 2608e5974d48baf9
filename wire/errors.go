package wire

import "errors"

// Decode errors. All of them are attempt-scoped: a failed decode rules
// out one interpretation of a buffer, it does not fail the whole dump.
var (
	// ErrTruncated reports that the buffer ended before a primitive
	// could be fully read.
	ErrTruncated = errors.New("buffer truncated")

	// ErrOverflow reports a varint that did not terminate within the
	// 10-byte maximum for a 64-bit value.
	ErrOverflow = errors.New("varint overflow")

	// ErrUnknownWireType reports a tag carrying wire type 3, 4, 6 or 7.
	ErrUnknownWireType = errors.New("unknown wire type")
)
