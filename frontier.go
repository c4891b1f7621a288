package levauto

// pair is a single (source-index, accumulated-cost) alignment: the
// claim that a prefix of the input could be aligned against P[:s] at
// a total edit cost of d so far.
type pair struct {
	s int // index into the pattern, 0..len(pattern)
	d int // edit cost spent reaching this alignment, 0..k
}

// frontier is the multiset of pairs describing every way a prefix of
// the input could currently be aligned against the pattern. Order is
// significant: it is the construction's deterministic enumeration
// order, and it feeds directly into the tracker's canonical key.
type frontier []pair
