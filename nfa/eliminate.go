package nfa

import "github.com/coregx/rex/class"

// eliminateEpsilons collapses every epsilon edge out of g, producing a
// compiled NFA whose nodes carry only labelled transitions plus an
// accept flag.
//
// Two sweeps:
//
//  1. forward compaction ("skip"): a node with exactly one outgoing
//     edge, itself an epsilon edge, contributes nothing of its own —
//     anything that reaches it really reaches whatever it points to.
//     skip is memoized and treats end as a fixed point (skip(end) ==
//     end), which is what makes the recursion terminate on the cyclic
//     graphs star/plus produce.
//  2. backward compaction: for every node, walk its epsilon closure
//     (using the skip results to shortcut pure chains) and collect
//     every labelled edge reachable without consuming input, plus
//     whether end itself is reachable (the node accepts).
func eliminateEpsilons(g *graph, start, end NodeID) *NFA {
	skipCache := make([]NodeID, len(g.nodes))
	skipped := make([]bool, len(g.nodes))

	var skip func(n NodeID) NodeID
	skip = func(n NodeID) NodeID {
		if skipped[n] {
			return skipCache[n]
		}
		// Mark in-progress with identity so a cycle through non-chain
		// nodes (e.g. a star's own start) resolves to itself rather
		// than recursing forever.
		skipped[n] = true
		skipCache[n] = n

		if n == end {
			return n
		}

		edges := g.nodes[n].Edges
		if len(edges) == 1 && edges[0].Label == nil {
			result := skip(edges[0].Target)
			skipCache[n] = result
			return result
		}
		return n
	}

	for i := range g.nodes {
		skip(NodeID(i))
	}

	type edgeKey struct {
		target  NodeID
		isClass bool
		ch      rune
		classID *class.Class
	}

	out := &NFA{
		transitions: make([][]Edge, len(g.nodes)),
		accept:      make([]bool, len(g.nodes)),
		start:       skip(start),
	}

	for i := range g.nodes {
		n := NodeID(i)
		seen := make(map[edgeKey]bool)
		visited := make(map[NodeID]bool)

		var walk func(node NodeID)
		walk = func(node NodeID) {
			node = skip(node)
			if visited[node] {
				return
			}
			visited[node] = true

			if node == end {
				out.accept[n] = true
				return
			}

			for _, e := range g.nodes[node].Edges {
				if e.Label == nil {
					walk(e.Target)
					continue
				}

				target := skip(e.Target)
				key := edgeKey{target: target}
				if e.Label.IsClass() {
					key.isClass = true
					key.classID = e.Label.Class()
				} else {
					key.ch = e.Label.Rune()
				}
				if seen[key] {
					continue
				}
				seen[key] = true
				out.transitions[n] = append(out.transitions[n], Edge{Label: e.Label, Target: target})
			}
		}

		walk(skip(n))
	}

	return out
}
