package nfa

import (
	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/class"
)

// compiler holds the arena being built during a single Compile call.
type compiler struct {
	g *graph
}

// Compile performs Thompson construction over tree, then eliminates
// every epsilon edge, producing a compiled NFA ready for simulation.
func Compile(tree ast.Node) *NFA {
	c := &compiler{g: &graph{}}
	frag := c.compileNode(tree)
	return eliminateEpsilons(c.g, frag.Start, frag.End)
}

func (c *compiler) compileNode(n ast.Node) fragment {
	switch v := n.(type) {
	case ast.Symbol:
		return c.compileSymbol(v.Value)
	case ast.Binary:
		left := c.compileNode(v.Left)
		right := c.compileNode(v.Right)
		if v.Op == ast.Concat {
			return c.concat(left, right)
		}
		return c.union(left, right)
	case ast.Unary:
		return c.compileUnary(v.Op, v.Child)
	default:
		panic("nfa: unknown ast node type")
	}
}

func (c *compiler) compileSymbol(v class.Value) fragment {
	s := c.g.addNode()
	e := c.g.addNode()
	label := v
	c.g.addEdge(s, &label, e)
	return fragment{Start: s, End: e}
}

// concat wires a's end to b's start with an epsilon edge.
func (c *compiler) concat(a, b fragment) fragment {
	c.g.addEdge(a.End, nil, b.Start)
	return fragment{Start: a.Start, End: b.End}
}

// union builds a new start splitting into a and b, and a new end both
// converge on.
func (c *compiler) union(a, b fragment) fragment {
	s := c.g.addNode()
	e := c.g.addNode()
	c.g.addEdge(s, nil, a.Start)
	c.g.addEdge(s, nil, b.Start)
	c.g.addEdge(a.End, nil, e)
	c.g.addEdge(b.End, nil, e)
	return fragment{Start: s, End: e}
}

// epsilon returns a zero-width fragment: a single node that is both its
// own start and end, with no edges yet. Concatenating onto it simply
// gives that node its first outgoing edge.
func (c *compiler) epsilon() fragment {
	n := c.g.addNode()
	return fragment{Start: n, End: n}
}

// optional builds the '?' construction: a new start that either enters
// a or bypasses straight to a's end.
func (c *compiler) optional(a fragment) fragment {
	s := c.g.addNode()
	c.g.addEdge(s, nil, a.Start)
	c.g.addEdge(s, nil, a.End)
	return fragment{Start: s, End: a.End}
}

// star builds the '*' construction: zero or more repetitions of a.
func (c *compiler) star(a fragment) fragment {
	s := c.g.addNode()
	e := c.g.addNode()
	c.g.addEdge(s, nil, a.Start)
	c.g.addEdge(s, nil, e)
	c.g.addEdge(a.End, nil, a.Start)
	c.g.addEdge(a.End, nil, e)
	return fragment{Start: s, End: e}
}

// plus builds the '+' construction: one or more repetitions of a, by
// looping a's own end back to its own start.
func (c *compiler) plus(a fragment) fragment {
	e := c.g.addNode()
	c.g.addEdge(a.End, nil, a.Start)
	c.g.addEdge(a.End, nil, e)
	return fragment{Start: a.Start, End: e}
}

// compileUnary expands a Range quantifier over child.
//
// Bounded {m,n}: m mandatory copies of child, followed by n-m copies
// each wrapped in '?' so any suffix of them may be skipped.
//
// Unbounded {m,}: special-cased at m==0 as a plain '*'. For m>=1 it is
// m-1 mandatory copies followed by a single '+'-wrapped copy — the
// '+' construction's own backedge already supplies "one or more
// further repetitions", so only m-1 (not m) copies need to precede it.
func (c *compiler) compileUnary(r ast.Range, child ast.Node) fragment {
	if r.Upper != nil {
		frag := c.epsilon()
		for i := uint32(0); i < r.Lower; i++ {
			frag = c.concat(frag, c.compileNode(child))
		}
		for i := r.Lower; i < *r.Upper; i++ {
			frag = c.concat(frag, c.optional(c.compileNode(child)))
		}
		return frag
	}

	if r.Lower == 0 {
		return c.star(c.compileNode(child))
	}

	frag := c.epsilon()
	for i := uint32(0); i < r.Lower-1; i++ {
		frag = c.concat(frag, c.compileNode(child))
	}
	return c.concat(frag, c.plus(c.compileNode(child)))
}
