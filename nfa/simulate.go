package nfa

import "github.com/coregx/rex/internal/sparse"

// Check reports whether text, in its entirety, matches the automaton —
// an implicitly anchored-both-ends match.
func (n *NFA) Check(text string) bool {
	runes := []rune(text)
	cap32 := uint32(n.NumStates())

	current := sparse.NewSparseSet(cap32)
	next := sparse.NewSparseSet(cap32)
	current.Insert(uint32(n.start))

	for _, r := range runes {
		next.Clear()
		for _, id := range current.Values() {
			for _, e := range n.transitions[id] {
				if e.Label.Matches(r) {
					next.Insert(uint32(e.Target))
				}
			}
		}
		current, next = next, current
		if current.IsEmpty() {
			return false
		}
	}

	for _, id := range current.Values() {
		if n.accept[id] {
			return true
		}
	}
	return false
}

// HasMatch reports whether any substring of text matches the automaton —
// an unanchored existence check. A new candidate start thread is seeded
// at every position; the search stops as soon as any thread accepts.
func (n *NFA) HasMatch(text string) bool {
	runes := []rune(text)
	cap32 := uint32(n.NumStates())

	current := sparse.NewSparseSet(cap32)
	next := sparse.NewSparseSet(cap32)

	for i := 0; i <= len(runes); i++ {
		current.Insert(uint32(n.start))

		for _, id := range current.Values() {
			if n.accept[id] {
				return true
			}
		}

		if i == len(runes) {
			break
		}

		r := runes[i]
		next.Clear()
		for _, id := range current.Values() {
			for _, e := range n.transitions[id] {
				if e.Label.Matches(r) {
					next.Insert(uint32(e.Target))
				}
			}
		}
		current, next = next, current
	}

	return false
}

// Search finds the earliest, then longest, match in text: among all
// substrings that match, the one with the smallest start offset, and
// among those, the largest end offset. Offsets are rune indices. ok is
// false if no substring matches.
func (n *NFA) Search(text string) (start, end int, ok bool) {
	runes := []rune(text)
	cap32 := uint32(n.NumStates())

	current := sparse.NewTrackedSet(cap32)
	next := sparse.NewTrackedSet(cap32)

	found := false
	bestStart, bestEnd := 0, 0

	for i := 0; i <= len(runes); i++ {
		// Once a match is known, no later start offset can beat it —
		// leftmost wins regardless of length, so new threads are
		// pointless past that point.
		if !found {
			current.Insert(uint32(n.start), i)
		}

		for _, id := range current.Values() {
			if !n.accept[id] {
				continue
			}
			s := current.OriginOf(id)
			if !found || s < bestStart || (s == bestStart && i > bestEnd) {
				found = true
				bestStart, bestEnd = s, i
			}
		}

		if i == len(runes) {
			break
		}
		if current.Size() == 0 && found {
			break
		}

		r := runes[i]
		next.Clear()
		for _, id := range current.Values() {
			st := current.OriginOf(id)
			for _, e := range n.transitions[id] {
				if e.Label.Matches(r) {
					next.Insert(uint32(e.Target), st)
				}
			}
		}
		current, next = next, current
	}

	return bestStart, bestEnd, found
}
