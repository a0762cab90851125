package lcw

// HashChain is an implementation of the MatchFinder interface that uses
// hash chaining to find matches. It chooses exactly the same matches as
// SimpleSearch, just without rescanning the window at every position.
type HashChain struct {
	// table holds position+1 of the most recent occurrence of each hash,
	// so that position 0 is distinct from an empty slot.
	table [maxTableSize]uint32

	// chain holds, for each position, the distance back to the previous
	// position with the same hash; 0 means the chain ends there.
	chain []uint16

	src    []byte
	parser GreedyParser
}

const (
	maxTableSize = 1 << 14
	shift        = 32 - 14
	// tableMask is redundant, but helps the compiler eliminate bounds
	// checks.
	tableMask = maxTableSize - 1
)

const hashMul32 = 0x1e35a7bd

// hash3 hashes the three bytes at src[i:], the length of the shortest
// encodable match.
func hash3(src []byte, i int) uint32 {
	u := uint32(src[i]) | uint32(src[i+1])<<8 | uint32(src[i+2])<<16
	return (u * hashMul32) >> shift
}

func (q *HashChain) Reset() {
	q.table = [maxTableSize]uint32{}
	q.chain = q.chain[:0]
	q.src = nil
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
// Each call is an independent buffer: an LCW window never spans buffers, so
// the table and chains are rebuilt from scratch.
func (q *HashChain) FindMatches(dst []Match, src []byte) []Match {
	q.table = [maxTableSize]uint32{}
	q.src = src

	chain := q.chain[:0]
	for i := 0; i+MinMatch <= len(src); i++ {
		h := hash3(src, i) & tableMask
		head := q.table[h]
		q.table[h] = uint32(i + 1)
		delta := i + 1 - int(head)
		if head == 0 || delta > 65535 {
			// Chains only need to cover the 4095-byte window;
			// anything the delta can't represent is far outside it.
			chain = append(chain, 0)
		} else {
			chain = append(chain, uint16(delta))
		}
	}
	q.chain = chain

	return q.parser.Parse(dst, q, 0, len(src))
}

func (q *HashChain) Search(dst []AbsoluteMatch, pos, min, max int) []AbsoluteMatch {
	src := q.src
	if max-pos < MinMatch || pos >= len(q.chain) {
		return dst
	}

	limit := pos - MaxDistance
	if limit < 0 {
		limit = 0
	}
	maxLen := max - pos
	if maxLen > MaxMatch {
		maxLen = MaxMatch
	}

	best := MinMatch - 1
	candidate := pos
	for {
		d := q.chain[candidate]
		if d == 0 {
			break
		}
		candidate -= int(d)
		if candidate < limit {
			break
		}
		// The chain links equal hashes, not necessarily equal bytes.
		if src[candidate] != src[pos] || src[candidate+1] != src[pos+1] || src[candidate+2] != src[pos+2] {
			continue
		}

		n := MinMatch
		for n < maxLen && src[candidate+n] == src[pos+n] {
			n++
		}
		if n <= best {
			continue
		}
		if !encodable(n, pos-candidate) {
			continue
		}
		dst = append(dst, AbsoluteMatch{
			Start: pos,
			End:   pos + n,
			Match: candidate,
		})
		best = n
		if best == maxLen {
			break
		}
	}

	return dst
}
