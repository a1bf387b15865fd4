// Package nfa compiles an ast.Node into a Thompson-construction NFA with
// epsilon edges eliminated, and simulates it against input text using a
// Pike-style parallel thread set (no backtracking, linear in input
// length).
package nfa

import (
	"github.com/coregx/rex/class"
	"github.com/coregx/rex/internal/conv"
)

// NodeID indexes into the compilation graph's nodes slice and into the
// compiled NFA's per-node tables.
type NodeID int

// Edge is a single transition out of a node. A nil Label marks an
// epsilon edge, consumed during compilation and never present in a
// compiled NFA.
type Edge struct {
	Label  *class.Value
	Target NodeID
}

// node is a compilation-time graph vertex: an arbitrary fan-out of
// outgoing edges. Thompson construction never gives a node more than
// two edges.
type node struct {
	Edges []Edge
}

// graph is the arena built during compilation; it is discarded once
// epsilon elimination produces the compiled NFA.
type graph struct {
	nodes []node
}

func (g *graph) addNode() NodeID {
	g.nodes = append(g.nodes, node{})
	// Guards the arena against outgrowing a 32-bit node count; a pattern
	// that expands this large has already blown past any reasonable
	// compile budget.
	conv.IntToUint32(len(g.nodes))
	return NodeID(len(g.nodes) - 1)
}

func (g *graph) addEdge(from NodeID, label *class.Value, to NodeID) {
	g.nodes[from].Edges = append(g.nodes[from].Edges, Edge{Label: label, Target: to})
}

// fragment is a partially built sub-automaton: everything reachable from
// Start can reach End, and nothing beyond.
type fragment struct {
	Start, End NodeID
}

// NFA is the compiled, epsilon-free automaton: each node's Transitions
// are labelled non-epsilon edges, and Accept marks nodes from which the
// original end node was epsilon-reachable.
type NFA struct {
	transitions [][]Edge
	accept      []bool
	start       NodeID
}

// NumStates reports the number of nodes in the compiled automaton.
func (n *NFA) NumStates() int {
	return len(n.transitions)
}
