// Package class implements the character-class representation shared by
// the AST and the compiled NFA: normalised spans with binary-search
// matching, and the Value union (a single character or a class) used as
// edge labels.
package class

import (
	"fmt"
	"sort"
	"strings"
)

// Span is a contiguous inclusive character range.
type Span struct {
	Lo, Hi rune
}

// Class is an ordered list of non-overlapping, non-adjacent spans plus an
// inverse flag. The zero value matches nothing.
type Class struct {
	spans   []Span
	inverse bool
}

// New builds a Class from an arbitrary (possibly unsorted, possibly
// overlapping, possibly invalid) span list, normalising it: spans with
// Lo > Hi are dropped, the remainder is sorted by Lo, and spans that
// overlap or are adjacent (Hi+1 >= next Lo) are merged.
//
// Normalisation is idempotent: feeding New its own Spans() back produces
// the same spans.
func New(spans []Span, inverse bool) *Class {
	clean := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Lo <= s.Hi {
			clean = append(clean, s)
		}
	}
	sort.Slice(clean, func(i, j int) bool { return clean[i].Lo < clean[j].Lo })

	out := clean[:0]
	for _, s := range clean {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if s.Lo <= last.Hi+1 {
				if s.Hi > last.Hi {
					last.Hi = s.Hi
				}
				continue
			}
		}
		out = append(out, s)
	}

	return &Class{spans: out, inverse: inverse}
}

// Spans returns the normalised, sorted span list. The returned slice must
// not be mutated by the caller.
func (c *Class) Spans() []Span {
	return c.spans
}

// Inverse reports whether this class matches the complement of its spans.
func (c *Class) Inverse() bool {
	return c.inverse
}

// Matches reports whether r falls within the class, accounting for the
// inverse flag. Uses binary search over the sorted span list: find the
// largest span with Lo <= r, then test r <= Hi.
func (c *Class) Matches(r rune) bool {
	i := sort.Search(len(c.spans), func(i int) bool { return c.spans[i].Lo > r }) - 1

	accepted := i >= 0 && r <= c.spans[i].Hi
	return c.inverse != accepted
}

func (c *Class) String() string {
	var b strings.Builder
	b.WriteString("[ ")
	if c.inverse {
		b.WriteString("^ ")
	}
	for _, s := range c.spans {
		fmt.Fprintf(&b, "%c-%c ", s.Lo, s.Hi)
	}
	b.WriteString("]")
	return b.String()
}

// Value is the edge label alphabet: either a single character or a
// character class.
type Value struct {
	isClass bool
	ch      rune
	class   *Class
}

// Char builds a Value matching exactly the rune c.
func Char(c rune) Value {
	return Value{ch: c}
}

// FromClass builds a Value matching the given class.
func FromClass(c *Class) Value {
	return Value{isClass: true, class: c}
}

// IsClass reports whether this value is a class (as opposed to a literal
// character).
func (v Value) IsClass() bool {
	return v.isClass
}

// Rune returns the wrapped rune. Only meaningful when IsClass() is false.
func (v Value) Rune() rune {
	return v.ch
}

// Class returns the wrapped class. Only meaningful when IsClass() is true.
func (v Value) Class() *Class {
	return v.class
}

// Matches reports whether r satisfies this value: equality for a literal
// character, class membership (XORed with inverse) for a class.
func (v Value) Matches(r rune) bool {
	if v.isClass {
		return v.class.Matches(r)
	}
	return v.ch == r
}

func (v Value) String() string {
	if v.isClass {
		return v.class.String()
	}
	return fmt.Sprintf("%c", v.ch)
}
