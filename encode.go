package lcw

// A CommandEncoder implements the Encoder interface, writing the LCW
// command stream.
type CommandEncoder struct{}

func (CommandEncoder) Reset() {}

func (CommandEncoder) Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte {
	pos := 0
	for _, m := range matches {
		dst = appendMatch(dst, src, pos, m)
		pos += m.Unmatched + m.Length
	}
	if pos < len(src) {
		dst = appendLiteral(dst, src[pos:])
	}
	if lastBlock {
		dst = append(dst, endMarker)
	}
	return dst
}

// appendMatch appends the commands for one Match, whose bytes start at
// src[pos].
func appendMatch(dst, src []byte, pos int, m Match) []byte {
	if m.Unmatched > 0 {
		dst = appendLiteral(dst, src[pos:pos+m.Unmatched])
		pos += m.Unmatched
	}
	if m.Length > 0 {
		if !encodable(m.Length, m.Distance) {
			// The control byte would be 0x00, the end marker.
			// Copying the three bytes as literals costs one byte more.
			dst = appendLiteral(dst, src[pos:pos+m.Length])
		} else {
			dst = appendCopy(dst, m.Length, m.Distance)
		}
	}
	return dst
}

// appendLiteral appends a run of literal bytes, switching to the two-byte
// long form above 64 bytes and splitting runs beyond the long form's
// 16384-byte range.
func appendLiteral(dst, lit []byte) []byte {
	for len(lit) > maxLongLiteral {
		c, c2 := longLiteralControl(maxLongLiteral)
		dst = append(dst, c, c2)
		dst = append(dst, lit[:maxLongLiteral]...)
		lit = lit[maxLongLiteral:]
	}
	if len(lit) == 0 {
		return dst
	}
	if len(lit) <= maxShortLiteral {
		dst = append(dst, shortLiteralControl(len(lit)))
	} else {
		c, c2 := longLiteralControl(len(lit))
		dst = append(dst, c, c2)
	}
	return append(dst, lit...)
}

// appendCopy appends back-reference commands covering length bytes at the
// given distance. Matches from the finders in this package never exceed
// MaxMatch, but a foreign MatchFinder's may, so over-long matches are split
// into chunks. The split keeps every tail long enough to encode: at least
// MinMatch bytes, one more when the distance is under 256 (a MinMatch tail
// there would pack to the end marker).
func appendCopy(dst []byte, length, distance int) []byte {
	minTail := MinMatch
	if distance < 0x100 {
		minTail = MinMatch + 1
	}
	for length > MaxMatch {
		n := MaxMatch
		if length-n < minTail {
			n = length - minTail
		}
		c, c2 := copyControl(n, distance)
		dst = append(dst, c, c2)
		length -= n
	}
	c, c2 := copyControl(length, distance)
	return append(dst, c, c2)
}
