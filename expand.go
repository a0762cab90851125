package lcw

import "fmt"

// Expand decodes an LCW command stream and returns the decompressed bytes.
// capacity bounds the output; it is supplied by the caller, typically from
// an asset index entry, since the stream itself carries no size header.
// The stream need not be pre-validated: any malformed input is reported as
// an error rather than best-effort output, because callers depend on exact
// round-trips for asset integrity.
func Expand(compressed []byte, capacity int) ([]byte, error) {
	dst := make([]byte, 0, capacity)

	for i := 0; i < len(compressed); {
		c := compressed[i]
		i++

		switch {
		case isEnd(c):
			return dst, nil

		case isLiteral(c):
			var n int
			if isLongLiteral(c) {
				if i == len(compressed) {
					return nil, fmt.Errorf("%w: long literal control at offset %d", ErrTruncatedStream, i-1)
				}
				n = longLiteralLength(c, compressed[i])
				i++
			} else {
				n = shortLiteralLength(c)
			}
			if n > len(compressed)-i {
				return nil, fmt.Errorf("%w: literal run of %d bytes with %d remaining", ErrTruncatedStream, n, len(compressed)-i)
			}
			if n > capacity-len(dst) {
				return nil, ErrOutputOverflow
			}
			dst = append(dst, compressed[i:i+n]...)
			i += n

		default:
			if i == len(compressed) {
				return nil, fmt.Errorf("%w: back-reference control at offset %d", ErrTruncatedStream, i-1)
			}
			length := copyLength(c)
			distance := copyDistance(c, compressed[i])
			i++
			if distance == 0 || distance > len(dst) {
				return nil, fmt.Errorf("%w: distance %d with %d bytes produced", ErrInvalidBackReference, distance, len(dst))
			}
			if length > capacity-len(dst) {
				return nil, ErrOutputOverflow
			}
			// Strictly one byte at a time: when distance < length the
			// source overlaps the bytes this command is writing, and
			// that self-feeding copy is the format's run-length
			// mechanism. A bulk copy would read stale bytes.
			for ; length > 0; length-- {
				dst = append(dst, dst[len(dst)-distance])
			}
		}
	}

	return nil, fmt.Errorf("%w: no end marker", ErrTruncatedStream)
}
