package lcw

// SimpleSearch is the reference implementation of the MatchFinder
// interface. It walks the whole window at each position, which is O(window
// × match length) but trivially correct; HashChain produces the same
// matches faster.
type SimpleSearch struct {
	src    []byte
	parser GreedyParser
}

func (s *SimpleSearch) Reset() {
	s.src = nil
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (s *SimpleSearch) FindMatches(dst []Match, src []byte) []Match {
	s.src = src
	return s.parser.Parse(dst, s, 0, len(src))
}

func (s *SimpleSearch) Search(dst []AbsoluteMatch, pos, min, max int) []AbsoluteMatch {
	src := s.src
	if max-pos < MinMatch {
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

	// Nearest candidates first, and only strictly longer matches are
	// kept, so of two equal-length candidates the smaller distance wins.
	best := MinMatch - 1
	for candidate := pos - 1; candidate >= limit; candidate-- {
		n := 0
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
