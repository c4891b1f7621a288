// Package levauto implements a Levenshtein automaton: given a fixed
// pattern P and a non-negative edit-distance budget k, it answers
// "is the Levenshtein distance between P and a query string Q at most
// k?" in time proportional to len(Q), independent of len(P) once the
// automaton has been built.
//
// Construction explores the space of reachable edit frontiers and
// produces a minimized, deduplicated transition graph (build.go),
// which is then flattened into two contiguous arrays for
// cache-friendly recognition (flatten.go, recognize.go). A
// self-contained two-row dynamic-programming routine
// (LevenshteinDistance) computes exact edit distance and is used to
// validate the automaton in tests.
//
// An Automaton is deeply immutable after construction and safe to use
// concurrently from multiple goroutines: Check only reads the flat
// arrays built by New.
package levauto

import "fmt"

// Automaton is a compiled Levenshtein automaton for one (pattern,
// budget) pair. The zero value is not usable; construct one with New.
type Automaton struct {
	pattern string
	k       int

	heads []head
	trns  []transition
}

// New builds an Automaton that accepts exactly the strings within edit
// distance k of pattern. k must be non-negative. Construction cost is
// exponential in k but polynomial in len(pattern) for fixed k.
//
// Example:
//
//	a := levauto.New("abc", 1)
//	a.Check("abx") // true
//	a.Check("axx") // false
func New(pattern string, k int) *Automaton {
	if k < 0 {
		panic(fmt.Sprintf("levauto: New(%q, %d): k must be non-negative", pattern, k))
	}

	runes := []rune(pattern)
	lookup := make(map[string]*buildNode)
	root := build(runes, 0, frontier{{s: 0, d: 0}}, k, lookup)
	heads, trns := flatten(root)

	return &Automaton{
		pattern: pattern,
		k:       k,
		heads:   heads,
		trns:    trns,
	}
}

// Details returns the pattern and budget the Automaton was built with.
//
// Example:
//
//	a := levauto.New("abc", 1)
//	p, k := a.Details() // "abc", 1
func (a *Automaton) Details() (string, int) {
	return a.pattern, a.k
}
