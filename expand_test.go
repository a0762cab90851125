package lcw

import (
	"bytes"
	"errors"
	"testing"
)

func TestExpandBareEnd(t *testing.T) {
	out, err := Expand([]byte{0x00}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d bytes, wanted none", len(out))
	}
}

func TestExpandShortLiteral(t *testing.T) {
	out, err := Expand([]byte{0x80, 0x58, 0x00}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x58}) {
		t.Fatalf("got %q", out)
	}
}

func TestExpandLiteralRun(t *testing.T) {
	out, err := Expand([]byte{0x83, 'H', 'e', 'l', 'l', 0x00}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte("Hell")) {
		t.Fatalf("got %q", out)
	}
}

func TestExpandLongLiteral(t *testing.T) {
	// 0xC0, 0x40 is the long form for a 65-byte run.
	compressed := []byte{0xC0, 0x40}
	compressed = append(compressed, bytes.Repeat([]byte{0x55}, 65)...)
	compressed = append(compressed, 0x00)

	out, err := Expand(compressed, 200)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, bytes.Repeat([]byte{0x55}, 65)) {
		t.Fatalf("got %d bytes: %q", len(out), out)
	}
}

func TestExpandBackReference(t *testing.T) {
	// Four literals, then length=4 distance=4.
	out, err := Expand([]byte{0x83, 'A', 'B', 'C', 'D', 0x10, 0x04, 0x00}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte("ABCDABCD")) {
		t.Fatalf("got %q", out)
	}
}

func TestExpandOverlappingBackReference(t *testing.T) {
	// One literal 'A', then length=(0x50>>4)+3=8 at distance 1:
	// the copy reads bytes it has just written, producing nine A's.
	out, err := Expand([]byte{0x80, 'A', 0x50, 0x01, 0x00}, 16)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, bytes.Repeat([]byte{'A'}, 9)) {
		t.Fatalf("got %q", out)
	}
}

// TestExpandOverlapMatrix checks every short-distance copy the format can
// express against an independently computed cyclic repetition of the seed.
// (Length 3 is absent for distances under 256: its control byte would be
// the end marker, so the wire can't express it; see TestExpandLength3Far.)
func TestExpandOverlapMatrix(t *testing.T) {
	for distance := 1; distance <= 4; distance++ {
		seed := make([]byte, distance)
		for i := range seed {
			seed[i] = byte('a' + i)
		}
		for length := MinMatch + 1; length <= MaxMatch; length++ {
			compressed := []byte{shortLiteralControl(len(seed))}
			compressed = append(compressed, seed...)
			c, c2 := copyControl(length, distance)
			compressed = append(compressed, c, c2, 0x00)

			want := append([]byte{}, seed...)
			for j := 0; j < length; j++ {
				want = append(want, seed[j%distance])
			}

			out, err := Expand(compressed, len(want))
			if err != nil {
				t.Fatalf("distance=%d length=%d: %v", distance, length, err)
			}
			if !bytes.Equal(out, want) {
				t.Errorf("distance=%d length=%d: got %q, wanted %q", distance, length, out, want)
			}
		}
	}
}

func TestExpandLength3Far(t *testing.T) {
	// A length-3 copy is only encodable at distances of 256 or more.
	seed := make([]byte, 300)
	for i := range seed {
		seed[i] = byte(i)
	}
	compressed := []byte{0xC1, 0x2B} // long literal, 300 bytes
	compressed = append(compressed, seed...)
	c, c2 := copyControl(3, 300)
	compressed = append(compressed, c, c2, 0x00)

	out, err := Expand(compressed, 303)
	if err != nil {
		t.Fatal(err)
	}
	want := append(append([]byte{}, seed...), seed[0], seed[1], seed[2])
	if !bytes.Equal(out, want) {
		t.Fatal("length-3 copy at distance 300 decoded wrong")
	}
}

func TestExpandInvalidDistance(t *testing.T) {
	// One byte produced, then a copy reaching back 16 bytes.
	_, err := Expand([]byte{0x80, 'A', 0x10, 0x10, 0x00}, 16)
	if !errors.Is(err, ErrInvalidBackReference) {
		t.Fatalf("got %v, wanted ErrInvalidBackReference", err)
	}
}

func TestExpandZeroDistance(t *testing.T) {
	_, err := Expand([]byte{0x80, 'A', 0x10, 0x00, 0x00}, 16)
	if !errors.Is(err, ErrInvalidBackReference) {
		t.Fatalf("got %v, wanted ErrInvalidBackReference", err)
	}
}

func TestExpandTruncated(t *testing.T) {
	cases := [][]byte{
		{0x85, 'a', 'b'},       // literal run promises 6 bytes, 2 present
		{0xC0},                 // long literal missing its second control byte
		{0xC0, 0x40, 'a', 'b'}, // long literal missing most of its payload
		{0x80, 'A', 0x10},      // back-reference missing its distance byte
		{0x80, 'A'},            // stream ends without an end marker
		{},                     // empty stream
	}
	for i, c := range cases {
		_, err := Expand(c, 16)
		if !errors.Is(err, ErrTruncatedStream) {
			t.Errorf("case %d (% x): got %v, wanted ErrTruncatedStream", i, c, err)
		}
	}
}

func TestExpandOutputOverflow(t *testing.T) {
	// Ten literal bytes into a five-byte capacity.
	compressed := []byte{0x89, '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 0x00}
	_, err := Expand(compressed, 5)
	if !errors.Is(err, ErrOutputOverflow) {
		t.Fatalf("got %v, wanted ErrOutputOverflow", err)
	}

	// A copy overflowing: 1 literal plus a 10-byte copy into capacity 4.
	_, err = Expand([]byte{0x80, 'A', 0x70, 0x01, 0x00}, 4)
	if !errors.Is(err, ErrOutputOverflow) {
		t.Fatalf("got %v, wanted ErrOutputOverflow", err)
	}
}
