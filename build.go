package levauto

// buildNode is a transient, construction-phase automaton state. It is
// immutable once returned from build and may be shared by multiple
// parents whose frontiers collided under the dedup key.
type buildNode struct {
	order       []tchar
	transitions map[tchar]*buildNode
	accepting   bool
}

// build recursively constructs the build-node graph for pattern at
// depth x_i with frontier f, under edit budget k, memoizing completed
// nodes in lookup by their canonical key. For each pair in f it emits
// the end-of-pattern, match, deletion-lookahead, and generic
// insertion/substitution transitions in that fixed order, so that two
// equal frontiers at the same depth always produce the same snapshot
// and therefore the same dedup key.
func build(pattern []rune, depth int, f frontier, k int, lookup map[string]*buildNode) *buildNode {
	t := newTracker()
	accepting := false

	for _, p := range f {
		s, d := p.s, p.d
		rem := k - d

		if s >= len(pattern) {
			// End-of-pattern: terminating here is a valid accept: the
			// input may still carry rem more characters, each an
			// insertion charged one edit via the wildcard self-loop.
			accepting = true
			if rem > 0 {
				t.add(wildcard, pair{s, d + 1})
			}
			continue
		}

		matchChar := exact(pattern[s])
		// Match: consume the matching character at zero cost.
		t.add(matchChar, pair{s + 1, d})

		// Deletion lookahead: try matching further ahead in the
		// pattern, treating the skipped characters as deletions.
		for offset := 1; offset <= rem; offset++ {
			if s+offset >= len(pattern) {
				accepting = true
				break
			}
			c := exact(pattern[s+offset])
			if c != matchChar {
				// delete offset chars of P, then match
				t.add(c, pair{s + offset + 1, d + offset})
				// treat c as an insertion into the input
				t.add(c, pair{s, d + 1})
				// treat c as a substitution
				t.add(c, pair{s + 1, d + 1})
			}
		}

		if rem > 0 {
			// Generic insertion / substitution against any character.
			t.add(wildcard, pair{s, d + 1})
			t.add(wildcard, pair{s + 1, d + 1})
			if s+1 >= len(pattern) {
				accepting = true
			}
		}
	}

	entries := t.snapshot()
	key := canonicalKey(depth, accepting, entries)
	if cached, ok := lookup[key]; ok {
		return cached
	}

	node := &buildNode{
		accepting:   accepting,
		transitions: make(map[tchar]*buildNode, len(entries)),
	}
	for _, e := range entries {
		node.order = append(node.order, e.key)
		node.transitions[e.key] = build(pattern, depth+1, e.fr, k, lookup)
	}
	// Depth strictly increases on every recursive call, so the graph
	// is acyclic and it is safe to insert into lookup only once every
	// child is fully built.
	lookup[key] = node
	return node
}
