package levauto

import (
	"sort"
	"strconv"
	"strings"
)

// tchar is a transition key: either a specific rune or the wildcard
// that matches any rune not claimed by an exact key at the same node.
type tchar struct {
	r    rune
	wild bool
}

func exact(r rune) tchar { return tchar{r: r} }

var wildcard = tchar{wild: true}

// tracker accumulates, for one build node under construction, the
// mapping from transition key to the frontier reachable by consuming
// that key's character. Entries preserve insertion order so the same
// frontier always produces the same snapshot, which is what makes the
// dedup key in build.go reproducible.
type tracker struct {
	order []tchar
	bykey map[tchar]frontier
}

func newTracker() *tracker {
	return &tracker{bykey: make(map[tchar]frontier)}
}

// add appends p to the frontier tracked under key, recording key's
// first-seen position in order.
func (t *tracker) add(key tchar, p pair) {
	if _, ok := t.bykey[key]; !ok {
		t.order = append(t.order, key)
	}
	t.bykey[key] = append(t.bykey[key], p)
}

// entry is one (key, frontier) pair of a tracker snapshot.
type entry struct {
	key tchar
	fr  frontier
}

// snapshot returns the tracker's contents in insertion order, suitable
// both for building child nodes and for hashing into a dedup key.
func (t *tracker) snapshot() []entry {
	entries := make([]entry, len(t.order))
	for i, k := range t.order {
		entries[i] = entry{key: k, fr: t.bykey[k]}
	}
	return entries
}

// canonicalKey renders a snapshot as a string suitable for use as a Go
// map key. Rendered entries are sorted lexicographically so that two
// trackers holding the same keys in a different first-seen order still
// produce the same key. The pairs within an entry are rendered in
// insertion order and are not sorted, so the same pairs added under
// one key in a different order produce a different key.
func canonicalKey(depth int, accepting bool, entries []entry) string {
	rendered := make([]string, len(entries))
	for i, e := range entries {
		rendered[i] = renderEntry(e)
	}
	sort.Strings(rendered)

	var b strings.Builder
	b.WriteString(strconv.Itoa(depth))
	b.WriteByte('|')
	if accepting {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	for _, r := range rendered {
		b.WriteByte('|')
		b.WriteString(r)
	}
	return b.String()
}

func renderEntry(e entry) string {
	var b strings.Builder
	if e.key.wild {
		b.WriteByte('*')
	} else {
		b.WriteByte('=')
		b.WriteRune(e.key.r)
	}
	for _, p := range e.fr {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.s))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.d))
	}
	return b.String()
}
