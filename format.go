package lcw

// LCW wire format limits.
const (
	// MinMatch is the shortest back-reference the format can encode.
	// Below it, the two command bytes cost more than the literals they
	// would replace.
	MinMatch = 3

	// MaxMatch is the longest back-reference the format can encode:
	// bits [6:4] of the control byte hold length-3, and bit 7 must be
	// clear to distinguish the command from a literal run.
	MaxMatch = 10

	// MaxDistance is how far back a reference may reach (12 bits).
	MaxDistance = 4095

	maxShortLiteral = 64    // 6-bit count, one control byte
	maxLongLiteral  = 16384 // 14-bit count, two control bytes

	endMarker = 0x00
)

// Each command starts with a control byte. The accessors below are the
// single description of its bit layout; the encoder and the expander both
// go through them so the two directions cannot drift apart.
//
//	0x00        end of stream
//	0x01..0x7F  back-reference: length = bits[6:4]+3, distance = bits[3:0]<<8 | next byte
//	0x80..0xBF  short literal run: count = bits[5:0]+1, raw bytes follow
//	0xC0..0xFF  long literal run: count = (bits[5:0]<<8 | next byte)+1, raw bytes follow

func isEnd(c byte) bool { return c == endMarker }

func isLiteral(c byte) bool { return c&0x80 != 0 }

// isLongLiteral is meaningful only when isLiteral(c).
func isLongLiteral(c byte) bool { return c&0x40 != 0 }

func shortLiteralLength(c byte) int { return int(c&0x3F) + 1 }

func longLiteralLength(c, c2 byte) int { return (int(c&0x3F)<<8 | int(c2)) + 1 }

func copyLength(c byte) int { return int(c>>4) + MinMatch }

func copyDistance(c, c2 byte) int { return int(c&0x0F)<<8 | int(c2) }

func shortLiteralControl(count int) byte { return 0x80 | byte(count-1) }

func longLiteralControl(count int) (byte, byte) {
	return 0xC0 | byte((count-1)>>8), byte(count - 1)
}

func copyControl(length, distance int) (byte, byte) {
	return byte(length-MinMatch)<<4 | byte(distance>>8), byte(distance)
}

// encodable reports whether a back-reference can be represented on the
// wire. A length-3 reference with distance < 256 would pack to control
// byte 0x00, which is the end marker, so it can never be emitted.
func encodable(length, distance int) bool {
	return !(length == MinMatch && distance < 0x100)
}
