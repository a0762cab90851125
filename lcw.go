// The lcw package implements the LCW compression format, the LZSS variant
// that Westwood Studios games use for sprites, maps, and other archived
// asset blobs.
//
// The compressed stream is a sequence of byte-oriented commands: literal
// runs, back-references into the previous 4095 bytes of output, and a
// single zero byte marking the end. A back-reference may reach into bytes
// it is still producing, which is how the format gets cheap run-length
// repetition. There is no header and no checksum; the caller tracks the
// decompressed size out of band, typically from an asset index.
//
// Expand and Compress work on whole in-memory buffers. Like many
// compression libraries, the compressor is split into two parts: something
// that looks for repeated sequences of bytes (MatchFinder), and an encoder
// for the compressed data format (Encoder). The two communicate through an
// intermediate representation of matches, so the search strategy can be
// swapped without touching the command encoding.
package lcw

// A Match is the basic unit of LZ77 compression.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the LZ77 stage of compression, looking for matches.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	FindMatches(dst []Match, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

// An Encoder encodes the data in its final format.
type Encoder interface {
	// Encode appends the encoded format of src to dst, using the match
	// information from matches. If lastBlock is true, the stream is
	// terminated as well.
	Encode(dst []byte, src []byte, matches []Match, lastBlock bool) []byte

	// Reset clears any internal state, preparing the Encoder to be used with
	// a new stream.
	Reset()
}
