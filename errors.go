package lcw

import "errors"

// Package errors. All of them are final for the call that returns them:
// corrupted data has no closest valid interpretation, and retrying a
// deterministic call on the same input reproduces the identical error.
var (
	// ErrTruncatedStream means a control byte promised bytes that the
	// compressed stream does not contain, or the stream ended without
	// its end marker.
	ErrTruncatedStream = errors.New("lcw: truncated stream")

	// ErrInvalidBackReference means a back-reference's distance was zero
	// or reached before the start of the output produced so far.
	ErrInvalidBackReference = errors.New("lcw: invalid back-reference")

	// ErrOutputOverflow means decompression would write past the
	// capacity the caller supplied.
	ErrOutputOverflow = errors.New("lcw: decompressed output exceeds capacity")

	// ErrBufferTooSmall means compression would produce more bytes than
	// the capacity the caller supplied.
	ErrBufferTooSmall = errors.New("lcw: compressed output exceeds capacity")
)
