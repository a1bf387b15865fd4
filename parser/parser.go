// Package parser implements a recursive-descent parser over the token
// stream, producing an ast.Node tree.
//
// Four nested precedence levels, lowest to highest: union ('|') ->
// concatenation (adjacency) -> quantifier (postfix) -> unit (symbol,
// group, class). All failure paths collapse to a single ErrInvalidSyntax,
// matching the "uniform parse error" contract.
package parser

import (
	"errors"
	"fmt"

	"github.com/coregx/rex/ast"
	"github.com/coregx/rex/class"
	"github.com/coregx/rex/token"
)

// ErrInvalidSyntax is the sole parse-error sentinel; every malformed
// pattern surfaces it, wrapped in *Error with the offending token index.
var ErrInvalidSyntax = errors.New("invalid syntax")

const maxQuantifier = 65535 // u16::MAX

// Error reports a parse failure at a given token index.
type Error struct {
	Pos int
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parser: %s (at token %d)", e.Err, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse builds an AST from a token sequence produced by lexer.Lex.
func Parse(tokens []token.Token) (ast.Node, error) {
	p := &parser{tokens: tokens}
	out, err := p.union()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, p.fail()
	}
	return out, nil
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) fail() error {
	return &Error{Pos: p.pos, Err: ErrInvalidSyntax}
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (token.Token, bool) {
	if p.atEnd() {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() (token.Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// union := concat ('|' concat)*
func (p *parser) union() (ast.Node, error) {
	out, err := p.concat()
	if err != nil {
		return nil, err
	}

	for {
		t, ok := p.peek()
		if !ok || !t.IsSyntax('|') {
			break
		}
		p.advance()

		next, err := p.concat()
		if err != nil {
			return nil, err
		}
		out = ast.MakeUnion(out, next)
	}

	return out, nil
}

// concat := quantifier+   -- stops at '|' or ')'
func (p *parser) concat() (ast.Node, error) {
	out, err := p.quantifier()
	if err != nil {
		return nil, err
	}

	for {
		t, ok := p.peek()
		if !ok || t.IsSyntax('|') || t.IsSyntax(')') {
			break
		}

		next, err := p.quantifier()
		if err != nil {
			return nil, err
		}
		out = ast.MakeConcat(out, next)
	}

	return out, nil
}

// quantifier := unit (? | * | + | '{' n (',' n?)? '}')?
func (p *parser) quantifier() (ast.Node, error) {
	out, err := p.unit()
	if err != nil {
		return nil, err
	}

	t, ok := p.peek()
	if !ok || t.Kind() != token.Syntax {
		return out, nil
	}

	switch t.Byte() {
	case '?':
		p.advance()
		return ast.MakeUnary(ast.Bounded(0, 1), out), nil
	case '*':
		p.advance()
		return ast.MakeUnary(ast.Unbounded(0), out), nil
	case '+':
		p.advance()
		return ast.MakeUnary(ast.Unbounded(1), out), nil
	case '{':
		p.advance()
		rng, err := p.rangeBody()
		if err != nil {
			return nil, err
		}
		return ast.MakeUnary(rng, out), nil
	default:
		return out, nil
	}
}

// rangeBody parses 'n (',' n?)? }' with the leading '{' already consumed.
func (p *parser) rangeBody() (ast.Range, error) {
	lower, err := p.numeral()
	if err != nil {
		return ast.Range{}, err
	}

	t, ok := p.advance()
	if !ok {
		return ast.Range{}, p.fail()
	}

	switch {
	case t.IsSyntax('}'):
		return ast.Bounded(lower, lower), nil

	case t.IsLiteral(','):
		if next, ok := p.peek(); ok && next.Kind() == token.Literal && isDigit(next.Rune()) {
			upper, err := p.numeral()
			if err != nil {
				return ast.Range{}, err
			}
			if close, ok := p.advance(); !ok || !close.IsSyntax('}') {
				return ast.Range{}, p.fail()
			}
			return ast.Bounded(lower, upper), nil
		}

		if close, ok := p.advance(); !ok || !close.IsSyntax('}') {
			return ast.Range{}, p.fail()
		}
		return ast.Unbounded(lower), nil

	default:
		return ast.Range{}, p.fail()
	}
}

// unit := Literal | '(' union ')' | '[' ('^')? span+ ']'
func (p *parser) unit() (ast.Node, error) {
	t, ok := p.advance()
	if !ok {
		return nil, p.fail()
	}

	switch {
	case t.Kind() == token.Literal:
		return ast.Symbol{Value: class.Char(t.Rune())}, nil

	case t.IsSyntax('('):
		out, err := p.union()
		if err != nil {
			return nil, err
		}
		if close, ok := p.advance(); !ok || !close.IsSyntax(')') {
			return nil, p.fail()
		}
		return out, nil

	case t.IsSyntax('['):
		return p.classBody()

	default:
		return nil, p.fail()
	}
}

// classBody parses '(^)? span+ ]' with the leading '[' already consumed.
func (p *parser) classBody() (ast.Node, error) {
	inverse := false
	if t, ok := p.peek(); ok && t.IsLiteral('^') {
		inverse = true
		p.advance()
	}

	first, err := p.span()
	if err != nil {
		return nil, err
	}
	spans := []class.Span{first}

	for {
		t, ok := p.peek()
		if !ok {
			return nil, p.fail()
		}
		if t.IsSyntax(']') {
			break
		}

		s, err := p.span()
		if err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}

	p.advance() // ']'

	return ast.Symbol{Value: class.FromClass(class.New(spans, inverse))}, nil
}

// span := Literal ('-' Literal)?
func (p *parser) span() (class.Span, error) {
	t, ok := p.peek()
	if !ok || t.Kind() != token.Literal {
		return class.Span{}, p.fail()
	}
	p.advance()
	start := t.Rune()

	end := start
	if nxt, ok := p.peek(); ok && nxt.IsSyntax('-') {
		p.advance()
		hi, ok := p.advance()
		if !ok || hi.Kind() != token.Literal {
			return class.Span{}, p.fail()
		}
		end = hi.Rune()
	}

	if start > end {
		return class.Span{}, p.fail()
	}
	return class.Span{Lo: start, Hi: end}, nil
}

// numeral := Literal+   -- ASCII digits, value <= 65535
func (p *parser) numeral() (uint32, error) {
	t, ok := p.advance()
	if !ok || t.Kind() != token.Literal || !isDigit(t.Rune()) {
		return 0, p.fail()
	}
	out := uint32(t.Rune() - '0')

	for {
		nxt, ok := p.peek()
		if !ok || nxt.Kind() != token.Literal || !isDigit(nxt.Rune()) {
			break
		}
		p.advance()
		out = out*10 + uint32(nxt.Rune()-'0')
		if out > maxQuantifier {
			return 0, p.fail()
		}
	}

	return out, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
