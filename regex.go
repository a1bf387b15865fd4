// Package rex is a small regex engine built from first principles: a
// lexer and recursive-descent parser produce an AST, which is compiled
// via Thompson construction into an epsilon-free NFA, simulated with a
// Pike-style parallel thread set. Matching is guaranteed O(n*m) with no
// backtracking, so it cannot be driven into catastrophic blowup by any
// input.
//
// The supported pattern syntax covers literals, `.`-free character
// classes `[a-z]`/`[^a-z]`, alternation `|`, grouping `(...)`, and the
// quantifiers `? * + {m} {m,} {m,n}`. There is no capture-group
// extraction, no anchors, and no Unicode property classes — see
// Regex.Check, Regex.HasMatch and Regex.Search for what the three
// supported operations mean precisely.
//
// Basic usage:
//
//	re, err := rex.Compile(`[a-z]+@[a-z]+.com`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Check("user@example.com")       // true: the whole string matches
//	re.HasMatch("write to user@example.com today") // true: a substring matches
//	start, end, ok := re.Search("write to user@example.com today")
package rex

import (
	"fmt"

	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/lexer"
	"github.com/coregx/rex/nfa"
	"github.com/coregx/rex/parser"
)

// Error is returned by Compile when pattern fails to lex or parse. It
// wraps whichever stage failed so callers can errors.As into
// *lexer.Error or *parser.Error for positional detail.
type Error struct {
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rex: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Regex is a compiled pattern, safe for concurrent use by multiple
// goroutines (it holds no mutable state).
type Regex struct {
	pattern string
	tree    ast.Node
	prog    *nfa.NFA
}

// Compile lexes, parses, and compiles pattern, returning a usable Regex
// or the first error encountered.
func Compile(pattern string) (*Regex, error) {
	tokens, err := lexer.Lex(pattern)
	if err != nil {
		return nil, &Error{Pattern: pattern, Err: err}
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		return nil, &Error{Pattern: pattern, Err: err}
	}

	return &Regex{
		pattern: pattern,
		tree:    tree,
		prog:    nfa.Compile(tree),
	}, nil
}

// MustCompile is like Compile but panics if pattern is invalid. Intended
// for patterns known at compile time (package-level vars, etc.).
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the original pattern text.
func (re *Regex) String() string {
	return re.pattern
}

// Check reports whether text, in its entirety, matches the pattern —
// equivalent to the pattern being implicitly anchored at both ends.
func (re *Regex) Check(text string) bool {
	return re.prog.Check(text)
}

// HasMatch reports whether any substring of text matches the pattern.
func (re *Regex) HasMatch(text string) bool {
	return re.prog.HasMatch(text)
}

// Search finds the leftmost match in text and, among matches sharing
// that start, the longest one. start and end are rune offsets (not byte
// offsets) such that text's runes [start,end) are the match. ok is false
// if no substring matches.
func (re *Regex) Search(text string) (start, end int, ok bool) {
	return re.prog.Search(text)
}
