package ast

import (
	"testing"

	"github.com/coregx/rex/class"
)

func TestSymbolString(t *testing.T) {
	s := Symbol{Value: class.Char('a')}
	if s.String() != "a" {
		t.Fatalf("String() = %q, want %q", s.String(), "a")
	}
}

func TestBinaryString(t *testing.T) {
	u := MakeUnion(Symbol{Value: class.Char('a')}, Symbol{Value: class.Char('b')})
	if u.String() != "Union(a, b)" {
		t.Fatalf("String() = %q, want %q", u.String(), "Union(a, b)")
	}

	c := MakeConcat(Symbol{Value: class.Char('a')}, Symbol{Value: class.Char('b')})
	if c.String() != "Concat(a, b)" {
		t.Fatalf("String() = %q, want %q", c.String(), "Concat(a, b)")
	}
}

func TestRangeString(t *testing.T) {
	if got := Bounded(1, 3).String(); got != "Range(1, Some(3))" {
		t.Fatalf("Bounded(1,3).String() = %q", got)
	}
	if got := Unbounded(2).String(); got != "Range(2, None)" {
		t.Fatalf("Unbounded(2).String() = %q", got)
	}
}

func TestUnaryString(t *testing.T) {
	u := MakeUnary(Unbounded(1), Symbol{Value: class.Char('x')})
	if u.String() != "Range(1, None)(x)" {
		t.Fatalf("String() = %q", u.String())
	}
}
