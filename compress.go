package lcw

// Compress encodes src as an LCW command stream, including the end marker.
// capacity bounds the compressed size; MaxCompressedSize(len(src)) is
// always sufficient. If any emitted command would exceed capacity, the
// error is ErrBufferTooSmall and no partial output is returned.
//
// Compression is greedy: at each position the longest match wins, with
// ties broken by the smallest distance, so the output is deterministic for
// any given input.
func Compress(src []byte, capacity int) ([]byte, error) {
	var f SimpleSearch
	return CompressWith(src, &f, capacity)
}

// CompressWith is like Compress, but uses the supplied MatchFinder.
// HashChain produces the same output as the default finder, only faster;
// other finders change the compressed bytes but still round-trip.
func CompressWith(src []byte, f MatchFinder, capacity int) ([]byte, error) {
	matches := f.FindMatches(nil, src)

	dst := make([]byte, 0, capacity)
	pos := 0
	for _, m := range matches {
		dst = appendMatch(dst, src, pos, m)
		pos += m.Unmatched + m.Length
		if len(dst) > capacity {
			return nil, ErrBufferTooSmall
		}
	}
	if pos < len(src) {
		dst = appendLiteral(dst, src[pos:])
		if len(dst) > capacity {
			return nil, ErrBufferTooSmall
		}
	}
	if len(dst) == capacity {
		return nil, ErrBufferTooSmall
	}
	return append(dst, endMarker), nil
}

// MaxCompressedSize returns a capacity guaranteed sufficient for
// compressing any input of length n. The worst case is incompressible
// data: one control byte per 64 literal bytes, plus the end marker and
// rounding slack.
func MaxCompressedSize(n int) int {
	return (n*65+63)/64 + 2
}
