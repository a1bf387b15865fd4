// Package ast defines the abstract syntax tree produced by the parser:
// symbols (a character or class), unary quantifier nodes, and binary
// union/concatenation nodes.
package ast

import (
	"fmt"

	"github.com/coregx/rex/class"
)

// Node is any AST node: Symbol, Unary, or Binary.
type Node interface {
	fmt.Stringer
	isNode()
}

// Symbol is a leaf node matching a single character or class.
type Symbol struct {
	Value class.Value
}

func (Symbol) isNode() {}

func (s Symbol) String() string {
	return s.Value.String()
}

// BinOp identifies the operator of a Binary node.
type BinOp uint8

const (
	// Union is alternation: `a|b`.
	Union BinOp = iota
	// Concat is sequencing by adjacency: `ab`.
	Concat
)

func (op BinOp) String() string {
	if op == Union {
		return "Union"
	}
	return "Concat"
}

// Binary is a two-child node: a union or a concatenation.
type Binary struct {
	Op          BinOp
	Left, Right Node
}

func (Binary) isNode() {}

func (b Binary) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Op, b.Left, b.Right)
}

// MakeUnion builds a Binary Union node.
func MakeUnion(left, right Node) Node {
	return Binary{Op: Union, Left: left, Right: right}
}

// MakeConcat builds a Binary Concat node.
func MakeConcat(left, right Node) Node {
	return Binary{Op: Concat, Left: left, Right: right}
}

// Range is the quantifier a Unary node carries: match the child at least
// Lower times, and at most Upper times if Upper is non-nil (unbounded
// otherwise).
type Range struct {
	Lower uint32
	Upper *uint32 // nil means unbounded
}

func (r Range) String() string {
	if r.Upper == nil {
		return fmt.Sprintf("Range(%d, None)", r.Lower)
	}
	return fmt.Sprintf("Range(%d, Some(%d))", r.Lower, *r.Upper)
}

// Bounded builds a Range with both endpoints set.
func Bounded(lower, upper uint32) Range {
	return Range{Lower: lower, Upper: &upper}
}

// Unbounded builds a Range with no upper endpoint.
func Unbounded(lower uint32) Range {
	return Range{Lower: lower}
}

// Unary is a quantifier node: repeat Child according to Op.
type Unary struct {
	Op    Range
	Child Node
}

func (Unary) isNode() {}

func (u Unary) String() string {
	return fmt.Sprintf("%s(%s)", u.Op, u.Child)
}

// MakeUnary builds a Unary node.
func MakeUnary(op Range, child Node) Node {
	return Unary{Op: op, Child: child}
}
